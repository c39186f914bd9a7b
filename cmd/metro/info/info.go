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

package info

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/transitmap/metro"
	"github.com/transitmap/metro/cmd/metro/cli"
	"github.com/transitmap/metro/internal/schemeio"
	"github.com/transitmap/metro/model"
)

var out io.Writer = os.Stdout

// schemeInfo is the printable shape of a scheme document.
type schemeInfo struct {
	Size         model.Size `json:"size"`
	FitZoom      float64    `json:"fitZoom"`
	StationCount int64      `json:"stationCount"`
	LabelCount   int64      `json:"labelCount"`
	RawBytes     uint64     `json:"rawBytes"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
}

var infoCmd = &cobra.Command{
	Use:   "info [<scheme file>]",
	Short: "Print information about a scheme file",
	Long:  "Print information about a scheme file, read from the argument or stdin",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var f *os.File

		var err error
		if len(args) == 1 {
			f, err = os.Open(args[0])
			if err != nil {
				log.Fatal(err)
			}
		} else {
			f = os.Stdin
		}

		in, err := cli.WrapInputFile(f)
		if err != nil {
			log.Fatal(err)
		}

		info := runInfo(in)

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}

		jsonfmt, err := cmd.Flags().GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		if jsonfmt {
			renderJSON(info)
		} else {
			renderTxt(info)
		}
	},
}

func runInfo(in io.Reader) *schemeInfo {
	compressed, err := io.ReadAll(in)
	if err != nil {
		log.Fatal(err)
	}

	raw, err := schemeio.Decompress(compressed)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := metro.ParseSchemeDocument(raw)
	if err != nil {
		log.Fatal(err)
	}

	meta := doc.Metadata()

	return &schemeInfo{
		Size:         meta.Size,
		FitZoom:      metro.FitZoom(meta.Size),
		StationCount: int64(len(meta.Stations)),
		LabelCount:   int64(len(meta.Labels)),
		RawBytes:     uint64(len(raw)),
	}
}

func renderJSON(info *schemeInfo) {
	b, err := json.Marshal(info)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprint(out, string(b))
}

func renderTxt(info *schemeInfo) {
	fmt.Fprintf(out, "Size: %gx%g\n", info.Size.Width, info.Size.Height)
	fmt.Fprintf(out, "FitZoom: %.2f\n", info.FitZoom)
	fmt.Fprintf(out, "Stations: %s\n", humanize.Comma(info.StationCount))
	fmt.Fprintf(out, "Labels: %s\n", humanize.Comma(info.LabelCount))
	fmt.Fprintf(out, "RawSize: %s\n", humanize.Bytes(info.RawBytes))
}
