// Copyright 2025 Ian Lewis
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

package main

import (
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up headwords",
	ArgsUsage: "WORD...",
	Description: strings.Join([]string{
		"Look up dictionary entries by headword.",
		"Both traditional and simplified forms are recognized.",
	}, "\n"),
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return fmt.Errorf("%w: expected at least one word", ErrFlagParse)
		}

		d, err := openCedict(c)
		if err != nil {
			return err
		}

		tbl := table.New("Traditional", "Simplified", "Pinyin", "Definitions")
		tbl.WithWriter(c.App.Writer)

		var missing []string
		for _, word := range c.Args().Slice() {
			e := d.Entry(word)
			if e == nil {
				missing = append(missing, word)
				continue
			}
			tbl.AddRow(e.Traditional, e.Simplified, e.Pinyin, strings.Join(e.Definitions, "; "))
		}
		tbl.Print()

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
		}
		return nil
	},
}
