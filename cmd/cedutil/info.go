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
	"errors"
	"fmt"
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cccedict"
)

var infoCommand = &cli.Command{
	Name:        "info",
	Usage:       "Show dictionary data info",
	Description: "Show the dictionary data file's entry count, publication date, and age.",
	Action: func(c *cli.Context) error {
		d, err := openCedict(c)
		if err != nil {
			return err
		}

		dateValue := "unknown"
		if date, ok := d.Date(); ok {
			dateValue = date.Format(time.RFC3339)
		}

		ageValue := "unknown"
		age, err := d.Age(time.Now().UTC())
		switch {
		case err == nil:
			ageValue = fmt.Sprintf("%d days", age)
		case !errors.Is(err, cccedict.ErrNoDate):
			return fmt.Errorf("%w: %w", ErrCedutil, err)
		}

		tbl := table.New("Data File", "Entries", "Date", "Age")
		tbl.WithWriter(c.App.Writer)
		tbl.AddRow(c.String("data"), d.Len(), dateValue, ageValue)
		tbl.Print()

		return nil
	},
}
