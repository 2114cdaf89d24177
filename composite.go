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
	"strings"
	"unicode"
)

// CompositeText is the parsed form of a question's text.
// CompositeText values are immutable:
// the With methods return a new value with a recomputed fingerprint.
type CompositeText struct {
	original     string
	leading      string
	topicPath    TopicPathWithWhitespace
	hasTopicPath bool
	body         string
	direction    Direction
	blockID      string
	fingerprint  Fingerprint
}

// ParseCompositeText splits span into a CompositeText.
// If dir is [DirectionUnspecified], the direction is detected from the body.
func ParseCompositeText(span string, dir Direction, s *Settings) CompositeText {
	parts := Split(span, s)
	if dir == DirectionUnspecified {
		dir = DetectDirection(parts.Body)
	}
	return NewCompositeText(span, parts, dir)
}

// NewCompositeText returns a CompositeText built from parts.
// original is the text that the question occupies in its note.
// Whitespace at the start of parts.Body is moved in front of the body
// and whitespace at its end is dropped.
func NewCompositeText(original string, parts Parts, dir Direction) CompositeText {
	body := strings.TrimRightFunc(parts.Body, unicode.IsSpace)
	trimmed := trimLeadingSpace(body)
	ws := body[:len(body)-len(trimmed)]
	body = trimmed

	c := CompositeText{
		original:  original,
		leading:   parts.Leading,
		body:      body,
		direction: dir,
		blockID:   parts.BlockID,
	}
	if parts.HasTopicPath {
		c.topicPath = parts.TopicPath
		c.topicPath.Post += ws
		c.hasTopicPath = true
	} else {
		c.leading += ws
	}
	c.fingerprint = computeFingerprint(c.topicPath, c.hasTopicPath, c.body)
	return c
}

// Original returns the text that was parsed.
// It is used to find the question in its note.
func (c CompositeText) Original() string {
	return c.original
}

// TopicPath returns the topic tag at the start of the question, if any.
func (c CompositeText) TopicPath() (tp TopicPathWithWhitespace, ok bool) {
	return c.topicPath, c.hasTopicPath
}

// Leading returns the text before the body that is not a kept topic tag.
func (c CompositeText) Leading() string {
	return c.leading
}

// Body returns the question text without topic tag,
// block identifier or schedule comment.
func (c CompositeText) Body() string {
	return c.body
}

// Direction returns the writing direction of the question.
func (c CompositeText) Direction() Direction {
	return c.direction
}

// BlockID returns the question's block identifier, if any.
func (c CompositeText) BlockID() (id string, ok bool) {
	return c.blockID, c.blockID != ""
}

// Fingerprint returns the hash of the topic tag (with its whitespace) and body.
func (c CompositeText) Fingerprint() Fingerprint {
	return c.fingerprint
}

// EndsWithCodeFence reports whether the body ends by closing a fenced code block.
func (c CompositeText) EndsWithCodeFence() bool {
	return EndsWithCodeFence(c.body)
}

// WithBody returns a copy of c with a different body.
func (c CompositeText) WithBody(body string) CompositeText {
	parts := c.parts()
	parts.Body = body
	return NewCompositeText(c.original, parts, c.direction)
}

// WithTopicPath returns a copy of c with the given topic tag.
// Any leading text is replaced by the tag's whitespace.
func (c CompositeText) WithTopicPath(tp TopicPathWithWhitespace) CompositeText {
	parts := c.parts()
	parts.Leading = ""
	parts.TopicPath = tp
	parts.HasTopicPath = true
	return NewCompositeText(c.original, parts, c.direction)
}

// WithoutTopicPath returns a copy of c without a topic tag.
// The whitespace before the removed tag is kept.
func (c CompositeText) WithoutTopicPath() CompositeText {
	parts := c.parts()
	if parts.HasTopicPath {
		parts.Leading = parts.TopicPath.Pre
	}
	parts.TopicPath = TopicPathWithWhitespace{}
	parts.HasTopicPath = false
	return NewCompositeText(c.original, parts, c.direction)
}

// WithBlockID returns a copy of c with the given block identifier.
// An empty id removes the identifier.
func (c CompositeText) WithBlockID(id string) CompositeText {
	parts := c.parts()
	parts.BlockID = id
	return NewCompositeText(c.original, parts, c.direction)
}

func (c CompositeText) parts() Parts {
	return Parts{
		Leading:      c.leading,
		TopicPath:    c.topicPath,
		HasTopicPath: c.hasTopicPath,
		Detected:     c.topicPath.Path,
		Body:         c.body,
		BlockID:      c.blockID,
	}
}
