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

//go:build windows

package main

import (
	"os"
	"path/filepath"
)

// dataFileName is the file name of the MDBG CC-CEDICT export.
const dataFileName = "cedict_1_0_ts_utf-8_mdbg.txt.gz"

func dataPath() string {
	if cedictDataDir := os.Getenv("CEDICT_DATA_DIR"); cedictDataDir != "" {
		return filepath.Join(cedictDataDir, dataFileName)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "cccedict", dataFileName)
	}

	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		return filepath.Join(homeDir, ".cccedict", dataFileName)
	}

	return dataFileName
}
