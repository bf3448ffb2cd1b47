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

package folding_test

import (
	"testing"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-cccedict/internal/folding"
)

// TestWhitespaceFolder tests WhitespaceFolder.
func TestWhitespaceFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string

		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "no whitespace",
			input:    "中国",
			expected: "中国",
		},
		{
			name:     "surrounding whitespace",
			input:    " \t中国\n ",
			expected: "中国",
		},
		{
			name:     "internal span collapsed",
			input:    "中 \t 国",
			expected: "中 国",
		},
		{
			name:     "whitespace only",
			input:    " \t\n",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&folding.WhitespaceFolder{}, test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if want := test.expected; want != got {
				t.Fatalf("transform.String; want: %q, got: %q", want, got)
			}
		})
	}
}

// TestHeadword tests that the headword folder normalizes to NFC.
func TestHeadword(t *testing.T) {
	t.Parallel()

	// "e\u0301" is the decomposed (NFD) form of "\u00e9"; the folder
	// produces the precomposed form.
	got, _, err := transform.String(folding.Headword(), " e\u0301 ")
	if err != nil {
		t.Fatalf("transform.String: %v", err)
	}
	if want := "\u00e9"; want != got {
		t.Fatalf("transform.String; want: %q, got: %q", want, got)
	}
}
