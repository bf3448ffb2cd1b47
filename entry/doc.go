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

// Package entry implements parsing of CC-CEDICT dictionary lines.
//
// Each non-comment line of a CC-CEDICT data file encodes one entry:
//
//	TRAD SIMP [PINYIN] /DEF1/DEF2;DEF2b/DEF3/
//
//  1. The traditional-script headword, followed by a space and the
//     simplified-script headword.
//  2. The pinyin pronunciation in square brackets, with numeric tone marks
//     (e.g. [ai4]).
//  3. One or more '/'-delimited English senses. A sense may contain several
//     ';'-delimited glosses.
//
// Lines beginning with '#' are comments. The metadata comment
//
//	#! date=YYYY-MM-DDTHH:MM:SSZ
//
// carries the file's publication timestamp in UTC.
//
// More info on the format can be found at this URL:
// https://cc-cedict.org/wiki/format:syntax
package entry
