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

// Package index implements a headword position index.
package index

// Index maps keys to positions in a backing entry list. Later writes for the
// same key overwrite earlier ones, so a key always resolves to the position
// of the last entry added under it.
type Index[K comparable] struct {
	pos map[K]int
}

// New creates an empty index.
func New[K comparable]() *Index[K] {
	return &Index[K]{
		pos: map[K]int{},
	}
}

// Set records the position for the given key, overwriting any prior
// position.
func (idx *Index[K]) Set(key K, pos int) {
	idx.pos[key] = pos
}

// Get returns the position recorded for the given key.
func (idx *Index[K]) Get(key K) (int, bool) {
	pos, ok := idx.pos[key]
	return pos, ok
}

// Len returns the number of distinct keys in the index.
func (idx *Index[K]) Len() int {
	return len(idx.pos)
}
