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
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-cccedict/update"
)

var updateCommand = &cli.Command{
	Name:        "update",
	Usage:       "Download new dictionary data",
	Description: "Download the latest CC-CEDICT data file and replace the local data file.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Usage: "download dictionary data from `URL`",
			Value: update.DefaultURL,
		},
	},
	Action: func(c *cli.Context) error {
		dest := c.String("data")
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return fmt.Errorf("%w: %w", ErrCedutil, err)
		}

		fmt.Fprintf(c.App.Writer, "Downloading %s...\n", c.String("url"))
		if err := update.Download(c.Context, c.String("url"), dest, nil); err != nil {
			return fmt.Errorf("%w: %w", ErrCedutil, err)
		}

		// Read the new data file back to verify it parses.
		d, err := openCedict(c)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "Updated %s (%d entries).\n", dest, d.Len())
		return nil
	},
}
