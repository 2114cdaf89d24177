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

// Package schedule formats and parses the spaced-repetition state
// that is stored alongside a question in an HTML comment:
//
//	Question::Answer <!--SR:!2023-09-02,4,270-->
//
// The package does not compute schedules.
package schedule

import (
	"fmt"
	"time"
)

const (
	// CommentBegin is the token that opens a schedule comment.
	CommentBegin = "<!--SR:"
	// CommentEnd is the token that closes a schedule comment.
	CommentEnd = "-->"
)

// InitialInterval is the interval (in days) of a card that has never been reviewed.
const InitialInterval = 1

const dateLayout = "2006-01-02"

// dummyDue is the due date written for cards that have no schedule yet.
// Readers recognize it as "new card" rather than as a real due date.
var dummyDue = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info is the review state of a single card.
type Info struct {
	Due      time.Time
	Interval int // days
	Ease     int
}

// Dummy returns the placeholder schedule for a card that has not been reviewed.
// It keeps a schedule comment well-formed when only some of a question's cards
// have been reviewed.
func Dummy(baseEase int) Info {
	return Info{
		Due:      dummyDue,
		Interval: InitialInterval,
		Ease:     baseEase,
	}
}

// IsDummy reports whether info is a placeholder returned by [Dummy].
func (info Info) IsDummy() bool {
	y1, m1, d1 := info.Due.Date()
	y2, m2, d2 := dummyDue.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Format returns the entry for info as it appears inside a schedule comment,
// for example "!2023-09-02,4,270".
func (info Info) Format() string {
	return fmt.Sprintf("!%s,%d,%d", info.Due.Format(dateLayout), info.Interval, info.Ease)
}

// DueString returns the due date in the comment's date format.
func (info Info) DueString() string {
	return info.Due.Format(dateLayout)
}
