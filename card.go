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

import "zombiezen.com/go/flashcard/schedule"

// A Card is one reviewable unit of a [Question],
// such as one deletion of a cloze question.
type Card struct {
	Front string
	Back  string

	index       int
	question    *Question
	schedule    schedule.Info
	hasSchedule bool
}

// NewCard returns a card without a schedule.
func NewCard(front, back string) *Card {
	return &Card{Front: front, Back: back}
}

// Question returns the question the card belongs to,
// or nil if the card has not been added to a question.
func (c *Card) Question() *Question {
	return c.question
}

// Index returns the card's position within its question.
func (c *Card) Index() int {
	return c.index
}

// Schedule returns the card's review state, if it has been reviewed.
func (c *Card) Schedule() (info schedule.Info, ok bool) {
	return c.schedule, c.hasSchedule
}

// HasSchedule reports whether the card has been reviewed.
func (c *Card) HasSchedule() bool {
	return c.hasSchedule
}

// IsNew reports whether the card has never been reviewed.
func (c *Card) IsNew() bool {
	return !c.hasSchedule
}

// SetSchedule records a new review state for the card
// and marks the card's question as changed.
func (c *Card) SetSchedule(info schedule.Info) {
	c.schedule = info
	c.hasSchedule = true
	if c.question != nil {
		c.question.MarkDirty()
	}
}

// ClearSchedule resets the card to the never-reviewed state
// and marks the card's question as changed.
func (c *Card) ClearSchedule() {
	c.schedule = schedule.Info{}
	c.hasSchedule = false
	if c.question != nil {
		c.question.MarkDirty()
	}
}
