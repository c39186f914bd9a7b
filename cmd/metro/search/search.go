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

package search

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/transitmap/metro"
	"github.com/transitmap/metro/cmd/metro/cli"
	"github.com/transitmap/metro/projection"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <city> <request>",
	Short: "Search a city's stations by name prefix",
	Long:  "Search a city's stations by name prefix and print the matches",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := cli.Options(cmd.Flags())
		if err != nil {
			log.Fatal(err)
		}

		ctx := cmd.Context()

		doc, err := metro.LoadScheme(ctx, args[0], opts...)
		if err != nil {
			log.Fatal(err)
		}

		view, err := metro.NewSchemeView(doc)
		if err != nil {
			log.Fatal(err)
		}

		stations := metro.NewStationCollection(view, projection.SphericalMercator{})

		matches, err := stations.Search(ctx, args[1])
		if err != nil {
			log.Fatal(err)
		}

		for _, s := range matches {
			if pos, err := s.Position(); err == nil {
				fmt.Fprintf(out, "%d: %s (%.5f, %.5f)\n",
					s.Code(), s.Title(), pos.Lat.Degrees(), pos.Lng.Degrees())

				continue
			}

			fmt.Fprintf(out, "%d: %s\n", s.Code(), s.Title())
		}
	},
}
