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

// Package cccedict implements a reader for the CC-CEDICT Chinese-English
// dictionary in pure Go.
//
// CC-CEDICT is distributed as a single line-oriented UTF-8 text file,
// usually gzip-compressed. The full file is read once into memory and
// indexed by both the traditional and simplified headword forms. Lookups
// against a loaded dictionary are read-only; refreshing the data file
// produces a new dictionary value (see the update package).
//
// More info on CC-CEDICT can be found at this URL:
// https://cc-cedict.org/wiki/
package cccedict
