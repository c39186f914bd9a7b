// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli holds the root command and shared helpers of the metro tool.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/transitmap/metro"
)

// RootCmd is the root of the metro command tree.
var RootCmd = &cobra.Command{
	Use:   "metro",
	Short: "Inspect transit scheme documents",
	Long:  "Inspect transit scheme documents: list cities, print scheme information and search stations.",
}

func init() {
	// .env provides METRO_PATH / METRO_LANG defaults; absence is fine.
	_ = godotenv.Load()

	flags := RootCmd.PersistentFlags()
	flags.StringP("path", "p", envOr("METRO_PATH", metro.DefaultPath), "scheme location: http(s) URL prefix or directory")
	flags.StringP("lang", "l", envOr("METRO_LANG", metro.DefaultLang), "scheme language")
}

// Execute runs the command tree.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Options converts the shared flags into load options.
func Options(flags *pflag.FlagSet) ([]metro.Option, error) {
	path, err := flags.GetString("path")
	if err != nil {
		return nil, err
	}

	lang, err := flags.GetString("lang")
	if err != nil {
		return nil, err
	}

	return []metro.Option{metro.WithPath(path), metro.WithLang(lang)}, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
