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

// Package folding implements text folding for headword lookup.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Headword returns a transformer that folds text for use as a headword index
// key. Surrounding whitespace is removed, internal whitespace spans are
// collapsed to a single ASCII space, and the result is normalized to NFC so
// that decomposed and precomposed forms of the same headword compare equal.
func Headword() transform.Transformer {
	return transform.Chain(&WhitespaceFolder{}, norm.NFC)
}

// WhitespaceFolder removes whitespace from the beginning and end of the
// input and replaces each internal whitespace span with a single ASCII space
// rune.
type WhitespaceFolder struct {
	// started is true once the first non-whitespace rune has been seen.
	started bool

	// pending is true while inside a whitespace span that may need a single
	// space emitted.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			// Leading whitespace is dropped. Internal whitespace is held
			// back; trailing whitespace is then never emitted.
			w.pending = w.started
			continue
		}

		if w.pending {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}

		// utf8.RuneLen is used because c could be utf8.RuneError whose
		// encoded length differs from size.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		w.started = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}
