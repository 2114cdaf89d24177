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

import (
	"errors"
	"fmt"
	"strings"

	"zombiezen.com/go/flashcard/internal/excerpt"
)

// ErrSpanNotFound is returned when a question's text
// cannot be found in its note.
var ErrSpanNotFound = errors.New("question text not found in note")

// A Span is a half-open range of byte offsets into a document.
type Span struct {
	Start int
	End   int
}

// NullSpan returns an invalid span.
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span is a valid range.
func (span Span) IsValid() bool {
	return span.Start >= 0 && span.End >= span.Start
}

// Len returns the length of the span or zero if the span is invalid.
func (span Span) Len() int {
	if !span.IsValid() {
		return 0
	}
	return span.End - span.Start
}

// String formats the span as "[start,end)".
func (span Span) String() string {
	return fmt.Sprintf("[%d,%d)", span.Start, span.End)
}

// LocateSpan returns the position of the first occurrence of original in doc
// or an invalid span if doc does not contain original.
// original may span several lines.
// An empty original is never found.
func LocateSpan(doc, original string) Span {
	if original == "" {
		return NullSpan()
	}
	i := strings.Index(doc, original)
	if i < 0 {
		return NullSpan()
	}
	return Span{Start: i, End: i + len(original)}
}

// ReplaceSpan replaces the first occurrence of original in doc with replacement.
// If doc does not contain original,
// ReplaceSpan returns doc unmodified and an error wrapping [ErrSpanNotFound].
func ReplaceSpan(doc, original, replacement string) (string, error) {
	span := LocateSpan(doc, original)
	if !span.IsValid() {
		return doc, fmt.Errorf("replace %q: %w", excerpt.Truncate(original, 40), ErrSpanNotFound)
	}
	return doc[:span.Start] + replacement + doc[span.End:], nil
}
