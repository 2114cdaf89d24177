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

// Package flashcard parses and rewrites the spaced-repetition questions
// embedded in Markdown notes.
// A question line such as
//
//	#flashcards/science What is H2O?::Water <!--SR:!2023-09-02,4,270--> ^h2o
//
// consists of an optional topic tag, the question body,
// an optional schedule comment, and an optional block identifier.
// Parsing a question and formatting it again
// reproduces the original text unless a part of it changed.
package flashcard

import (
	"regexp"
	"strings"
	"unicode"

	"zombiezen.com/go/flashcard/schedule"
)

// Patterns is the set of expressions used to split a question.
// A Patterns value is never modified after construction,
// so it may be shared between goroutines.
type Patterns struct {
	// TopicTag matches a tag at the start of its input.
	TopicTag *regexp.Regexp
	// BlockID matches a block identifier at the end of its input,
	// including the whitespace before it.
	// The first subexpression must match the identifier itself.
	BlockID *regexp.Regexp
}

var defaultPatterns = Patterns{
	TopicTag: regexp.MustCompile(`^#[^\s#]+`),
	BlockID:  regexp.MustCompile(`\s+(\^[A-Za-z0-9-]+)$`),
}

// DefaultPatterns returns the patterns used by [Split].
func DefaultPatterns() Patterns {
	return defaultPatterns
}

// Parts is the result of splitting a question.
type Parts struct {
	// Leading is any text before the body that is not part of TopicPath.
	// Without a topic tag, it is the question's indentation.
	// When s.ConvertFoldersToDecks is set,
	// it is the topic tag and its surrounding whitespace.
	Leading string
	// TopicPath is the topic tag at the start of the question.
	// It is only meaningful if HasTopicPath is true.
	TopicPath    TopicPathWithWhitespace
	HasTopicPath bool
	// Detected is the path of a topic tag at the start of the question,
	// regardless of whether it was kept as TopicPath.
	Detected TopicPath
	// Body is the question text.
	// It never starts or ends with whitespace.
	Body string
	// BlockID is the block identifier (like "^d7cee0")
	// or the empty string if the question has none.
	BlockID string
}

// Split decomposes a question span into its parts using [DefaultPatterns].
func Split(span string, s *Settings) Parts {
	return SplitWith(span, s, defaultPatterns)
}

// SplitWith decomposes a question span into its parts.
// The schedule comment is removed first,
// then the topic tag is taken from the start,
// then the block identifier is taken from the end.
// Each step works on what the previous one left.
func SplitWith(span string, s *Settings, pats Patterns) Parts {
	text := strings.TrimRightFunc(schedule.RemoveComment(span), unicode.IsSpace)
	rest := trimLeadingSpace(text)
	pre := text[:len(text)-len(rest)]

	var parts Parts
	if loc := pats.TopicTag.FindStringIndex(rest); loc != nil && loc[0] == 0 && loc[1] > 0 {
		tag := rest[:loc[1]]
		if tp := TopicPathFromTag(tag); tp.HasPath() {
			afterTag := rest[len(tag):]
			rest = trimLeadingSpace(afterTag)
			post := afterTag[:len(afterTag)-len(rest)]
			parts.Detected = tp
			if s.ConvertFoldersToDecks {
				parts.Leading = pre + tag + post
			} else {
				parts.TopicPath = TopicPathWithWhitespace{
					Pre:  pre,
					Tag:  tag,
					Path: tp,
					Post: post,
				}
				parts.HasTopicPath = true
			}
		}
	}
	if !parts.Detected.HasPath() {
		parts.Leading = pre
	}

	if m := pats.BlockID.FindStringSubmatchIndex(rest); m != nil {
		parts.BlockID = rest[m[2]:m[3]]
		rest = strings.TrimRightFunc(rest[:m[0]], unicode.IsSpace)
	}
	parts.Body = rest
	return parts
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
