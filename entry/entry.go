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

package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingDefinitions indicates that a dictionary line has no '/' and thus
// no definition list.
var ErrMissingDefinitions = errors.New("missing definitions")

// ErrBadHeadword indicates that the headword part of a dictionary line does
// not contain exactly a traditional and a simplified form.
var ErrBadHeadword = errors.New("bad headword")

// ErrMissingPinyin indicates that a dictionary line has no bracketed pinyin.
var ErrMissingPinyin = errors.New("missing pinyin")

// ErrBadDate indicates a malformed timestamp on a "#! date=" metadata line.
var ErrBadDate = errors.New("bad date")

// datePrefix marks the metadata line carrying the data file's publication
// timestamp, e.g. "#! date=2024-11-18T23:06:27Z".
const datePrefix = "#! date="

// dateLayout is the timestamp format used on "#! date=" lines. The trailing
// 'Z' is literal; timestamps are UTC.
const dateLayout = "2006-01-02T15:04:05Z"

// Entry is a single CC-CEDICT dictionary entry.
type Entry struct {
	// Traditional is the traditional-script headword.
	Traditional string

	// Simplified is the simplified-script headword.
	Simplified string

	// Pinyin is the romanized pronunciation with numeric tone marks,
	// verbatim from the data file.
	Pinyin string

	// Definitions are the English glosses in file order. Senses delimited by
	// '/' and glosses delimited by ';' within a sense are flattened into a
	// single list.
	Definitions []string
}

// String returns a string representation of the Entry in the data file's
// line format.
func (e *Entry) String() string {
	return fmt.Sprintf("%s %s [%s] /%s/", e.Traditional, e.Simplified, e.Pinyin, strings.Join(e.Definitions, "/"))
}

// IsComment returns whether the line is a comment or metadata line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// ParseDate parses a "#! date=" metadata line. It returns false for lines
// that do not carry the date prefix. Lines that carry the prefix but a
// malformed timestamp are an error.
func ParseDate(line string) (time.Time, bool, error) {
	value, found := strings.CutPrefix(line, datePrefix)
	if !found {
		return time.Time{}, false, nil
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrBadDate, err)
	}
	return date, true, nil
}

// Parse parses a single dictionary line of the form
//
//	TRAD SIMP [PINYIN] /DEF1/DEF2;DEF2b/DEF3/
//
// Comment lines must be filtered out by the caller beforehand. The split
// order matters: the English part is cut off at the first '/' before the
// Chinese part is examined so that definitions containing '[' or whitespace
// do not confuse the headword grammar.
func Parse(line string) (*Entry, error) {
	line = strings.TrimSpace(line)
	line = strings.TrimSuffix(line, "/")

	chinese, english, found := strings.Cut(line, "/")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrMissingDefinitions, line)
	}

	chinese = strings.TrimSpace(chinese)
	headwords, pinyin, found := strings.Cut(chinese, "[")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrMissingPinyin, line)
	}

	forms := strings.Fields(headwords)
	if len(forms) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadHeadword, line)
	}

	pinyin, found = strings.CutSuffix(pinyin, "]")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrMissingPinyin, line)
	}

	// Senses are delimited by '/', glosses within a sense by ';'. Both are
	// flattened into a single definition list in source order.
	var definitions []string
	for _, sense := range strings.Split(english, "/") {
		definitions = append(definitions, strings.Split(sense, ";")...)
	}

	return &Entry{
		Traditional: forms[0],
		Simplified:  forms[1],
		Pinyin:      pinyin,
		Definitions: definitions,
	}, nil
}
