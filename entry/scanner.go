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
	"bufio"
	"fmt"
	"io"
	"time"
)

// Scanner scans a decompressed CC-CEDICT data stream from start to end,
// producing one Entry per dictionary line. Comment lines are skipped. The
// "#! date=" metadata line is recorded and available via the Date method.
type Scanner struct {
	s *bufio.Scanner

	entry *Entry
	err   error

	date    time.Time
	hasDate bool

	line int
}

// NewScanner returns a new Scanner that reads UTF-8 text lines from r. The
// caller retains ownership of the reader.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
}

// Scan advances the scanner to the next dictionary entry. It returns false
// when the scan stops, either by reaching the end of the stream or an error.
// A malformed dictionary line or metadata timestamp stops the scan; no
// entries past the malformed line are produced.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.s.Scan() {
		s.line++
		line := s.s.Text()

		if IsComment(line) {
			date, found, err := ParseDate(line)
			if err != nil {
				s.err = fmt.Errorf("line %d: %w", s.line, err)
				return false
			}
			if found {
				// Last one wins though the format has at most one.
				s.date = date
				s.hasDate = true
			}
			continue
		}

		e, err := Parse(line)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			return false
		}
		s.entry = e
		return true
	}

	return false
}

// Entry returns the entry parsed by the last call to Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Date returns the data file's publication timestamp if a "#! date="
// metadata line has been scanned.
func (s *Scanner) Date() (time.Time, bool) {
	return s.date, s.hasDate
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}
