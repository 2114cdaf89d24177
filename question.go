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
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"zombiezen.com/go/flashcard/internal/excerpt"
)

// QuestionType is the syntax a question was written in.
type QuestionType int8

// Question types.
const (
	SingleLineBasic QuestionType = 1 + iota
	SingleLineReversed
	MultiLineBasic
	MultiLineReversed
	Cloze
)

// String returns the name of the question type.
func (t QuestionType) String() string {
	switch t {
	case SingleLineBasic:
		return "SingleLineBasic"
	case SingleLineReversed:
		return "SingleLineReversed"
	case MultiLineBasic:
		return "MultiLineBasic"
	case MultiLineReversed:
		return "MultiLineReversed"
	case Cloze:
		return "Cloze"
	default:
		return "QuestionType(" + strconv.Itoa(int(t)) + ")"
	}
}

// A Question is a span of a note that produces one or more cards.
type Question struct {
	Type   QuestionType
	Note   *Note
	LineNo int // zero-based line of the first line of the question

	// TopicPathList is the set of decks the question belongs to:
	// the question's own topic tag if it has one,
	// otherwise the note's topic paths.
	TopicPathList TopicPathList
	// HasEditLaterTag is true if the question text contains the edit later tag.
	HasEditLaterTag bool

	composite CompositeText
	cards     []*Card
	dirty     bool
}

// QuestionOptions is the set of parameters to [NewQuestion].
type QuestionOptions struct {
	Type   QuestionType
	Note   *Note
	LineNo int
	Text   CompositeText
}

// NewQuestion returns a new question with no cards.
func NewQuestion(opts QuestionOptions, s *Settings) *Question {
	q := &Question{
		Type:      opts.Type,
		Note:      opts.Note,
		LineNo:    opts.LineNo,
		composite: opts.Text,
	}
	q.resolveText(s)
	return q
}

// resolveText recomputes the fields derived from the question's text.
func (q *Question) resolveText(s *Settings) {
	if tp, ok := q.composite.TopicPath(); ok {
		q.TopicPathList = NewTopicPathList(tp.Path)
	} else if q.Note != nil {
		q.TopicPathList = q.Note.TopicPathList
	} else {
		q.TopicPathList = TopicPathList{}
	}
	q.HasEditLaterTag = s.EditLaterTag != "" && strings.Contains(q.composite.Original(), s.EditLaterTag)
}

// Composite returns the question's parsed text.
func (q *Question) Composite() CompositeText {
	return q.composite
}

// Cards returns the question's cards in order.
// The caller must not modify the returned slice.
func (q *Question) Cards() []*Card {
	return q.cards
}

// SetCards replaces the question's cards.
// It is the only way a card becomes associated with a question.
func (q *Question) SetCards(cards []*Card) {
	for _, c := range q.cards {
		c.question = nil
	}
	q.cards = cards
	for i, c := range cards {
		c.question = q
		c.index = i
	}
}

// HasNewCard reports whether any of the question's cards has never been reviewed.
func (q *Question) HasNewCard() bool {
	for _, c := range q.cards {
		if c.IsNew() {
			return true
		}
	}
	return false
}

func (q *Question) hasSchedule() bool {
	for _, c := range q.cards {
		if c.HasSchedule() {
			return true
		}
	}
	return false
}

// Dirty reports whether the question has changes
// that have not been written to its note.
func (q *Question) Dirty() bool {
	return q.dirty
}

// MarkDirty records that the question has changes
// that have not been written to its note.
func (q *Question) MarkDirty() {
	q.dirty = true
}

// SetText replaces the question's text after an edit by the user.
// The question keeps its original span so that it can still be found in the note,
// and it keeps its direction.
func (q *Question) SetText(text string, s *Settings) {
	parts := Split(text, s)
	q.composite = NewCompositeText(q.composite.Original(), parts, q.composite.Direction())
	q.resolveText(s)
	q.dirty = true
}

// UpdateQuestionText replaces the question's original span in noteText
// with its formatted text and returns the new note text.
// If the original span can no longer be found in noteText
// (because the note was changed elsewhere),
// UpdateQuestionText logs a warning to the [zerolog.Logger] in ctx
// and returns noteText unchanged along with an error wrapping [ErrSpanNotFound].
//
// On success, the question's text is re-parsed from the replacement
// so that later updates search for the new span.
// The question's direction does not change.
func (q *Question) UpdateQuestionText(ctx context.Context, noteText string, s *Settings) (string, error) {
	original := q.composite.Original()
	replacement := q.FormatForNote(s)
	newText, err := ReplaceSpan(noteText, original, replacement)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Int("line", q.LineNo).
			Str("search", excerpt.Truncate(original, excerpt.DefaultLength)).
			Str("document", excerpt.Truncate(noteText, excerpt.DefaultLength)).
			Msg("Question text not found in note; not updating")
		return noteText, err
	}
	q.composite = ParseCompositeText(replacement, q.composite.Direction(), s)
	return newText, nil
}
