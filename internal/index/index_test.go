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

package index_test

import (
	"testing"

	"github.com/ianlewis/go-cccedict/internal/index"
)

// TestIndex tests Index.
func TestIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sets map[string][]int
		key  string

		expected int
		found    bool
	}{
		{
			name: "missing key",
			sets: map[string][]int{
				"爱": {0},
			},
			key: "恨",
		},
		{
			name: "single write",
			sets: map[string][]int{
				"爱": {0},
			},
			key: "爱",

			expected: 0,
			found:    true,
		},
		{
			name: "last write wins",
			sets: map[string][]int{
				"爱": {0, 3, 7},
			},
			key: "爱",

			expected: 7,
			found:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := index.New[string]()
			for key, positions := range test.sets {
				for _, pos := range positions {
					idx.Set(key, pos)
				}
			}

			pos, found := idx.Get(test.key)
			if found != test.found {
				t.Fatalf("Get: found: %v; want: %v", found, test.found)
			}
			if pos != test.expected {
				t.Fatalf("Get: %v; want: %v", pos, test.expected)
			}
		})
	}
}

// TestIndex_Len tests Index.Len.
func TestIndex_Len(t *testing.T) {
	t.Parallel()

	idx := index.New[string]()
	idx.Set("爱", 0)
	idx.Set("恨", 1)
	idx.Set("爱", 2)

	if want, got := 2, idx.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}
}
