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

	"zombiezen.com/go/flashcard/schedule"
)

// FormatForNote returns the question's text as it should appear in its note.
//
// If none of the question's cards has a schedule,
// the result is the topic tag, the body and the block identifier.
// Otherwise a schedule comment is added after the body:
// on the same line if s.CardCommentOnSameLine is set
// and the body does not end with a code fence,
// on the next line otherwise.
// A block identifier always directly follows the body
// unless the comment is on the same line,
// in which case the identifier goes at the end of the line.
func (q *Question) FormatForNote(s *Settings) string {
	c := q.composite
	sb := new(strings.Builder)
	if tp, ok := c.TopicPath(); ok {
		sb.WriteString(tp.Format())
	} else {
		sb.WriteString(c.Leading())
	}
	sb.WriteString(c.Body())

	blockID, hasBlockID := c.BlockID()
	if !q.hasSchedule() {
		if hasBlockID {
			sb.WriteString(" ")
			sb.WriteString(blockID)
		}
		return sb.String()
	}

	text := strings.TrimRightFunc(sb.String(), unicode.IsSpace)
	sameLine := s.CardCommentOnSameLine && !c.EndsWithCodeFence()
	comment := q.FormatScheduleComment(s)
	switch {
	case hasBlockID && sameLine:
		return text + " " + comment + " " + blockID
	case hasBlockID:
		return text + " " + blockID + "\n" + comment
	case sameLine:
		return text + " " + comment
	default:
		return text + "\n" + comment
	}
}

// FormatScheduleComment returns the schedule comment for the question's cards.
// Cards without a schedule are written with [Settings.DummySchedule]
// so that each card keeps its position in the comment.
func (q *Question) FormatScheduleComment(s *Settings) string {
	infos := make([]schedule.Info, 0, len(q.cards))
	for _, c := range q.cards {
		info, ok := c.Schedule()
		if !ok {
			info = s.DummySchedule()
		}
		infos = append(infos, info)
	}
	return schedule.FormatComment(infos)
}
