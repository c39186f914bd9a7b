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

package cities

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"github.com/transitmap/metro"
	"github.com/transitmap/metro/cmd/metro/cli"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(citiesCmd)

	flags := citiesCmd.Flags()
	flags.BoolP("json", "j", false, "format the city table in JSON")
}

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the known cities and their scheme numbers",
	Long:  "List the known cities and their scheme numbers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		table := metro.DefaultCities()

		jsonfmt, err := cmd.Flags().GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		if jsonfmt {
			b, err := json.Marshal(table)
			if err != nil {
				log.Fatal(err)
			}

			fmt.Fprint(out, string(b))

			return
		}

		names := maps.Keys(table)
		slices.Sort(names)

		for _, name := range names {
			fmt.Fprintf(out, "%s: %d\n", name, table[name])
		}
	},
}
