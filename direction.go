// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package flashcard

import "golang.org/x/text/unicode/bidi"

// Direction is the writing direction of a question.
type Direction int8

// Directions.
const (
	DirectionUnspecified Direction = iota
	LeftToRight
	RightToLeft
)

// String returns "ltr", "rtl", or "unspecified".
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	default:
		return "unspecified"
	}
}

// DetectDirection returns the direction of the first strongly directional
// character in text,
// or [DirectionUnspecified] if text has no such character.
func DetectDirection(text string) Direction {
	for i := 0; i < len(text); {
		p, size := bidi.LookupString(text[i:])
		if size <= 0 {
			// Incomplete encoding at end of text.
			break
		}
		switch p.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
		i += size
	}
	return DirectionUnspecified
}
