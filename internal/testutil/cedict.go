// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil provides CC-CEDICT test data helpers.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ianlewis/go-dictzip"
	"github.com/klauspost/compress/gzip"
)

// MakeCedictOptions are options for building a test data file.
type MakeCedictOptions struct {
	// Ext is the data file extension. Files with a '.gz' extension are
	// gzip-compressed and files with a '.dz' extension are
	// dictzip-compressed. Defaults to '.txt'.
	Ext string

	// Date is an optional publication timestamp written as a "#! date="
	// metadata line.
	Date *time.Time
}

func (o *MakeCedictOptions) getExt() string {
	if o == nil || o.Ext == "" {
		return ".txt"
	}
	return o.Ext
}

// MakeCedict builds the text of a test data file from raw dictionary lines.
func MakeCedict(t *testing.T, lines []string, opts *MakeCedictOptions) string {
	t.Helper()

	header := []string{
		"# CC-CEDICT",
		"# Community maintained free Chinese-English dictionary.",
	}
	if opts != nil && opts.Date != nil {
		header = append(header, "#! date="+opts.Date.UTC().Format("2006-01-02T15:04:05Z"))
	}

	return strings.Join(append(header, lines...), "\n") + "\n"
}

// MakeTempCedict creates a temporary data file from raw dictionary lines and
// returns its path. The file is compressed according to the extension given
// in opts.
func MakeTempCedict(t *testing.T, lines []string, opts *MakeCedictOptions) string {
	t.Helper()

	data := MakeCedict(t, lines, opts)
	path := filepath.Join(t.TempDir(), "cedict"+opts.getExt())

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch opts.getExt() {
	case ".gz":
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case ".dz":
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(data)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(data); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
