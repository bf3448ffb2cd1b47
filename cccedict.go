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

package cccedict

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ianlewis/go-dictzip"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-cccedict/entry"
	"github.com/ianlewis/go-cccedict/internal/folding"
	"github.com/ianlewis/go-cccedict/internal/index"
)

// ErrNoDate indicates that the data file carried no "#! date=" metadata line
// so the dictionary's age cannot be determined.
var ErrNoDate = errors.New("no date metadata")

// Options are options for reading a dictionary.
type Options struct {
	// Fold returns a [transform.Transformer] that is applied to headwords
	// when the indexes are built and to queries at lookup time.
	Fold func() transform.Transformer
}

// DefaultOptions is the default options for a CcCedict.
var DefaultOptions = &Options{
	Fold: folding.Headword,
}

// CcCedict is an in-memory CC-CEDICT dictionary. It is built in a single
// pass over the data file and is read-only afterwards. A CcCedict is safe
// for concurrent readers; refreshing the data is done by building a new
// CcCedict and swapping the reference.
type CcCedict struct {
	// entries is the full entry list in file order. Both indexes hold
	// positions into this list.
	entries     []*entry.Entry
	traditional *index.Index[string]
	simplified  *index.Index[string]

	date    time.Time
	hasDate bool

	fold func() transform.Transformer
}

// Open reads the dictionary from the data file at the given path. Files
// with a .gz extension are read as gzip and files with a .dz extension as
// dictzip; anything else is read as plain UTF-8 text.
func Open(path string, options *Options) (*CcCedict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		r = z
	}

	d, err := New(r, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// New reads the dictionary from a decompressed UTF-8 text stream. The whole
// stream is consumed before New returns; a parse error on any line fails the
// read and no dictionary is returned.
func New(r io.Reader, options *Options) (*CcCedict, error) {
	if options == nil {
		options = DefaultOptions
	}

	d := &CcCedict{
		traditional: index.New[string](),
		simplified:  index.New[string](),
		fold:        DefaultOptions.Fold,
	}
	if options.Fold != nil {
		d.fold = options.Fold
	}

	s := entry.NewScanner(r)
	for s.Scan() {
		e := s.Entry()
		pos := len(d.entries)
		d.entries = append(d.entries, e)

		// Later entries overwrite earlier index positions for the same
		// headword. The overwritten entry remains in the entry list.
		d.traditional.Set(d.foldKey(e.Traditional), pos)
		d.simplified.Set(d.foldKey(e.Simplified), pos)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning entries: %w", err)
	}
	d.date, d.hasDate = s.Date()

	return d, nil
}

// Entry returns the entry for the given headword or nil if the headword is
// not in the dictionary. The traditional index is consulted before the
// simplified index, so a headword that is one entry's traditional form and
// another entry's simplified form resolves to the former.
func (d *CcCedict) Entry(headword string) *entry.Entry {
	key := d.foldKey(headword)
	if pos, ok := d.traditional.Get(key); ok {
		return d.entries[pos]
	}
	if pos, ok := d.simplified.Get(key); ok {
		return d.entries[pos]
	}
	return nil
}

// Traditional returns the traditional form for the given headword.
func (d *CcCedict) Traditional(headword string) (string, bool) {
	e := d.Entry(headword)
	if e == nil {
		return "", false
	}
	return e.Traditional, true
}

// Simplified returns the simplified form for the given headword.
func (d *CcCedict) Simplified(headword string) (string, bool) {
	e := d.Entry(headword)
	if e == nil {
		return "", false
	}
	return e.Simplified, true
}

// Pinyin returns the pinyin pronunciation for the given headword.
func (d *CcCedict) Pinyin(headword string) (string, bool) {
	e := d.Entry(headword)
	if e == nil {
		return "", false
	}
	return e.Pinyin, true
}

// Definitions returns the definitions for the given headword or nil if the
// headword is not in the dictionary.
func (d *CcCedict) Definitions(headword string) []string {
	e := d.Entry(headword)
	if e == nil {
		return nil
	}
	return e.Definitions
}

// Entries returns all entries in file order. The returned slice is the
// dictionary's backing list and must not be modified.
func (d *CcCedict) Entries() []*entry.Entry {
	return d.entries
}

// Len returns the number of entries in the dictionary.
func (d *CcCedict) Len() int {
	return len(d.entries)
}

// Date returns the data file's publication timestamp from its "#! date="
// metadata line.
func (d *CcCedict) Date() (time.Time, bool) {
	return d.date, d.hasDate
}

// Age returns the dictionary data's age in whole days at the given time.
// It returns ErrNoDate if the data file carried no publication timestamp.
func (d *CcCedict) Age(now time.Time) (int, error) {
	if !d.hasDate {
		return 0, ErrNoDate
	}
	return int(now.Sub(d.date).Hours() / 24), nil
}

// foldKey folds a headword or query for index use. The fold transformers
// never fail on valid UTF-8; on malformed input the string is used as-is so
// that index build and lookup stay consistent with each other.
func (d *CcCedict) foldKey(s string) string {
	folded, _, err := transform.String(d.fold(), s)
	if err != nil {
		return s
	}
	return folded
}
