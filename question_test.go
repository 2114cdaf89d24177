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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"zombiezen.com/go/flashcard/internal/corpus"
	"zombiezen.com/go/flashcard/schedule"
)

var testSchedule = schedule.Info{
	Due:      time.Date(2023, time.September, 2, 0, 0, 0, 0, time.UTC),
	Interval: 4,
	Ease:     270,
}

func TestFormatForNote(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sameLine  bool
		schedules []*schedule.Info // nil entry is a card without a schedule
		want      string
	}{
		{
			name:      "BlockIDAfterSameLineComment",
			text:      "Q2::A2 ^d7cee0",
			sameLine:  true,
			schedules: []*schedule.Info{&testSchedule},
			want:      "Q2::A2 <!--SR:!2023-09-02,4,270--> ^d7cee0",
		},
		{
			name:      "BlockIDBeforeNextLineComment",
			text:      "Q2::A2 ^d7cee0",
			sameLine:  false,
			schedules: []*schedule.Info{&testSchedule},
			want:      "Q2::A2 ^d7cee0\n<!--SR:!2023-09-02,4,270-->",
		},
		{
			name:      "NoSchedule",
			text:      "Q2::A2 ^d7cee0",
			sameLine:  true,
			schedules: []*schedule.Info{nil},
			want:      "Q2::A2 ^d7cee0",
		},
		{
			name:      "NoCards",
			text:      "Q2::A2",
			schedules: nil,
			want:      "Q2::A2",
		},
		{
			name:      "CodeFenceForcesNewline",
			text:      "Q\n?\n```\ncode\n```",
			sameLine:  true,
			schedules: []*schedule.Info{&testSchedule},
			want:      "Q\n?\n```\ncode\n```\n<!--SR:!2023-09-02,4,270-->",
		},
		{
			name:      "CodeFenceWithBlockID",
			text:      "Q\n?\n```\ncode\n``` ^abc",
			sameLine:  true,
			schedules: []*schedule.Info{&testSchedule},
			want:      "Q\n?\n```\ncode\n``` ^abc\n<!--SR:!2023-09-02,4,270-->",
		},
		{
			name:      "DummyForUnscheduledCard",
			text:      "A ==cloze== and ==another==",
			schedules: []*schedule.Info{nil, &testSchedule},
			want:      "A ==cloze== and ==another==\n<!--SR:!2000-01-01,1,250!2023-09-02,4,270-->",
		},
		{
			name:      "IndentationKept",
			text:      "    Q1::A1",
			sameLine:  true,
			schedules: []*schedule.Info{&testSchedule},
			want:      "    Q1::A1 <!--SR:!2023-09-02,4,270-->",
		},
		{
			name:      "TopicPathKept",
			text:      "#flashcards/science\tQ1::A1",
			schedules: []*schedule.Info{nil},
			want:      "#flashcards/science\tQ1::A1",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := DefaultSettings()
			s.CardCommentOnSameLine = test.sameLine
			q := NewQuestion(QuestionOptions{
				Type: SingleLineBasic,
				Text: ParseCompositeText(test.text, DirectionUnspecified, s),
			}, s)
			var cards []*Card
			for _, info := range test.schedules {
				c := NewCard("", "")
				if info != nil {
					c.SetSchedule(*info)
				}
				cards = append(cards, c)
			}
			q.SetCards(cards)

			got := q.FormatForNote(s)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("FormatForNote(...) (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLeadingWhitespacePreserved(t *testing.T) {
	s := DefaultSettings()
	q := newTestQuestion(t, "    Q1::A1", s)
	if _, ok := q.Composite().TopicPath(); ok {
		t.Error("TopicPath() present; want absent")
	}
	if got, want := q.Composite().Body(), "Q1::A1"; got != want {
		t.Errorf("Body() = %q; want %q", got, want)
	}
	const doc = "- list\n    Q1::A1\n"
	got, err := q.UpdateQuestionText(context.Background(), doc, s)
	if err != nil {
		t.Fatal(err)
	}
	if got != doc {
		t.Errorf("UpdateQuestionText(ctx, %q, s) = %q; want unchanged", doc, got)
	}
}

func TestConvertFoldersToDecksKeepsTag(t *testing.T) {
	s := DefaultSettings()
	s.ConvertFoldersToDecks = true
	note := &Note{TopicPathList: NewTopicPathList(TopicPathFromTag("#folder"))}
	q := NewQuestion(QuestionOptions{
		Note: note,
		Text: ParseCompositeText("#flashcards Q1::A1", DirectionUnspecified, s),
	}, s)
	q.SetCards([]*Card{NewCard("Q1", "A1")})

	if _, ok := q.Composite().TopicPath(); ok {
		t.Error("TopicPath() present; want absent")
	}
	if got, want := q.FormatForNote(s), "#flashcards Q1::A1"; got != want {
		t.Errorf("FormatForNote(s) = %q; want %q", got, want)
	}
	if !q.TopicPathList.Contains(TopicPathFromTag("#folder")) || q.TopicPathList.Len() != 1 {
		t.Errorf("TopicPathList = %v; want [folder]", q.TopicPathList.Paths())
	}
}

func TestQuestionTopicPathList(t *testing.T) {
	s := DefaultSettings()
	note := &Note{TopicPathList: NewTopicPathList(TopicPathFromTag("#note"))}

	own := NewQuestion(QuestionOptions{Note: note, Text: ParseCompositeText("#own/deck Q::A", DirectionUnspecified, s)}, s)
	if got := own.TopicPathList.Paths(); len(got) != 1 || got[0].String() != "own/deck" {
		t.Errorf("TopicPathList = %v; want [own/deck]", got)
	}

	inherited := NewQuestion(QuestionOptions{Note: note, Text: ParseCompositeText("Q::A", DirectionUnspecified, s)}, s)
	if got := inherited.TopicPathList.Paths(); len(got) != 1 || got[0].String() != "note" {
		t.Errorf("TopicPathList = %v; want [note]", got)
	}
}

func TestHasEditLaterTag(t *testing.T) {
	s := DefaultSettings()
	tests := []struct {
		text string
		tag  string
		want bool
	}{
		{"Q1::A1", "#edit-later", false},
		{"Q1::A1 #edit-later", "#edit-later", true},
		{"#edit-later Q1::A1", "#edit-later", true},
		{"Q1::A1 #edit-later", "", false},
	}
	for _, test := range tests {
		s.EditLaterTag = test.tag
		q := NewQuestion(QuestionOptions{Text: ParseCompositeText(test.text, DirectionUnspecified, s)}, s)
		if q.HasEditLaterTag != test.want {
			t.Errorf("NewQuestion(%q) with tag %q: HasEditLaterTag = %t; want %t", test.text, test.tag, q.HasEditLaterTag, test.want)
		}
	}
}

func TestSetCards(t *testing.T) {
	s := DefaultSettings()
	q := newTestQuestion(t, "Q1::A1", s)
	old := q.Cards()[0]
	cards := []*Card{NewCard("a", "b"), NewCard("c", "d")}
	q.SetCards(cards)

	if old.Question() != nil {
		t.Error("replaced card still references question")
	}
	for i, c := range q.Cards() {
		if c.Question() != q {
			t.Errorf("Cards()[%d].Question() = %p; want %p", i, c.Question(), q)
		}
		if c.Index() != i {
			t.Errorf("Cards()[%d].Index() = %d; want %d", i, c.Index(), i)
		}
	}
	if !q.HasNewCard() {
		t.Error("HasNewCard() = false; want true")
	}
	if q.Dirty() {
		t.Error("Dirty() = true before any change")
	}
	cards[0].SetSchedule(testSchedule)
	if !q.Dirty() {
		t.Error("Dirty() = false after SetSchedule")
	}
	cards[1].SetSchedule(testSchedule)
	if q.HasNewCard() {
		t.Error("HasNewCard() = true after scheduling all cards")
	}
}

func TestUpdateQuestionText(t *testing.T) {
	s := DefaultSettings()
	s.CardCommentOnSameLine = true
	const doc = "# Note\n\nQ0::A0\n\nQ1::A1 <!--SR:!2023-09-02,4,270--> ^abc\n\nMore text\n"
	q := newTestQuestion(t, "Q1::A1 <!--SR:!2023-09-02,4,270--> ^abc", s)
	fingerprint := q.Composite().Fingerprint()

	q.Cards()[0].SetSchedule(schedule.Info{
		Due:      time.Date(2023, time.September, 10, 0, 0, 0, 0, time.UTC),
		Interval: 8,
		Ease:     290,
	})
	got, err := q.UpdateQuestionText(context.Background(), doc, s)
	if err != nil {
		t.Fatal(err)
	}
	const want = "# Note\n\nQ0::A0\n\nQ1::A1 <!--SR:!2023-09-10,8,290--> ^abc\n\nMore text\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpdateQuestionText(...) (-want +got):\n%s", diff)
	}
	if got, want := q.Composite().Original(), "Q1::A1 <!--SR:!2023-09-10,8,290--> ^abc"; got != want {
		t.Errorf("Original() = %q; want %q", got, want)
	}
	if q.Composite().Fingerprint() != fingerprint {
		t.Errorf("Fingerprint() = %v after schedule update; want %v", q.Composite().Fingerprint(), fingerprint)
	}

	// A second update finds the new text.
	q.Cards()[0].SetSchedule(testSchedule)
	got2, err := q.UpdateQuestionText(context.Background(), got, s)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, got2); diff != "" {
		t.Errorf("second UpdateQuestionText(...) (-want +got):\n%s", diff)
	}
}

func TestUpdateQuestionTextMultiLine(t *testing.T) {
	s := DefaultSettings()
	const span = "#flashcards Question\n?\nAnswer\n<!--SR:!2023-09-02,4,270-->"
	doc := "Intro\n\n" + span + "\n\nOutro\n"
	q := newTestQuestion(t, span, s)
	q.SetText("#flashcards Question\n?\nBetter answer", s)
	if !q.Dirty() {
		t.Error("Dirty() = false after SetText")
	}
	got, err := q.UpdateQuestionText(context.Background(), doc, s)
	if err != nil {
		t.Fatal(err)
	}
	want := "Intro\n\n#flashcards Question\n?\nBetter answer\n<!--SR:!2023-09-02,4,270-->\n\nOutro\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpdateQuestionText(...) (-want +got):\n%s", diff)
	}
}

func TestUpdateQuestionTextNotFound(t *testing.T) {
	s := DefaultSettings()
	q := newTestQuestion(t, "Q9::A9", s)
	q.Cards()[0].SetSchedule(testSchedule)
	before := q.Composite()

	logBuf := new(bytes.Buffer)
	ctx := zerolog.New(logBuf).WithContext(context.Background())
	const doc = "# Note\n\nQ1::A1\n"
	got, err := q.UpdateQuestionText(ctx, doc, s)
	if !errors.Is(err, ErrSpanNotFound) {
		t.Errorf("UpdateQuestionText(...) error = %v; want %v", err, ErrSpanNotFound)
	}
	if got != doc {
		t.Errorf("UpdateQuestionText(...) = %q; want unchanged %q", got, doc)
	}
	if q.Composite().Original() != before.Original() || q.Composite().Fingerprint() != before.Fingerprint() {
		t.Error("Composite() changed after failed update")
	}
	logged := logBuf.String()
	for _, want := range []string{`"level":"warn"`, `"search":"Q9::A9"`, `"document":"# Note\\n\\nQ1::A1\\n"`} {
		if !strings.Contains(logged, want) {
			t.Errorf("log = %q; want to contain %q", logged, want)
		}
	}
}

func TestUpdateQuestionTextKeepsDirection(t *testing.T) {
	s := DefaultSettings()
	const doc = "שאלה::תשובה\n"
	q := newTestQuestion(t, "שאלה::תשובה", s)
	if got := q.Composite().Direction(); got != RightToLeft {
		t.Fatalf("Direction() = %v; want %v", got, RightToLeft)
	}
	q.SetText("Question::Answer", s)
	got, err := q.UpdateQuestionText(context.Background(), doc, s)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Question::Answer\n"; got != want {
		t.Errorf("UpdateQuestionText(...) = %q; want %q", got, want)
	}
	if got := q.Composite().Direction(); got != RightToLeft {
		t.Errorf("Direction() = %v after update; want %v", got, RightToLeft)
	}
}

func TestReplaceSpan(t *testing.T) {
	tests := []struct {
		doc         string
		original    string
		replacement string
		want        string
		wantErr     bool
	}{
		{"a Q b Q c", "Q", "R", "a R b Q c", false},
		{"line 1\nQ\n?\nA\nline 5", "Q\n?\nA", "Q\n?\nB", "line 1\nQ\n?\nB\nline 5", false},
		{"abc", "Q", "R", "abc", true},
		{"abc", "", "R", "abc", true},
		{"", "Q", "R", "", true},
	}
	for _, test := range tests {
		got, err := ReplaceSpan(test.doc, test.original, test.replacement)
		if got != test.want || (err != nil) != test.wantErr {
			t.Errorf("ReplaceSpan(%q, %q, %q) = %q, %v; want %q, error=%t",
				test.doc, test.original, test.replacement, got, err, test.want, test.wantErr)
		}
		if err != nil && !errors.Is(err, ErrSpanNotFound) {
			t.Errorf("ReplaceSpan(%q, %q, %q) error = %v; want %v", test.doc, test.original, test.replacement, err, ErrSpanNotFound)
		}
	}
}

func TestLocateSpan(t *testing.T) {
	if got, want := LocateSpan("ab\ncd", "b\nc"), (Span{Start: 1, End: 4}); got != want {
		t.Errorf("LocateSpan(...) = %v; want %v", got, want)
	}
	if got := LocateSpan("abc", "x"); got.IsValid() {
		t.Errorf("LocateSpan(\"abc\", \"x\") = %v; want invalid", got)
	}
	if got := NullSpan().Len(); got != 0 {
		t.Errorf("NullSpan().Len() = %d; want 0", got)
	}
}

func TestQuestionTypeString(t *testing.T) {
	if got, want := Cloze.String(), "Cloze"; got != want {
		t.Errorf("Cloze.String() = %q; want %q", got, want)
	}
	if got, want := QuestionType(0).String(), "QuestionType(0)"; got != want {
		t.Errorf("QuestionType(0).String() = %q; want %q", got, want)
	}
}

func FuzzFormatForNote(f *testing.F) {
	examples, err := corpus.Load()
	if err != nil {
		f.Fatal(err)
	}
	for _, ex := range examples {
		f.Add(ex.Span)
	}

	f.Fuzz(func(t *testing.T, span string) {
		if !utf8.ValidString(span) {
			t.Skip("Invalid UTF-8")
		}
		if strings.Contains(span, "<!--") || strings.Contains(span, "-->") {
			t.Skip("Contains HTML comment")
		}
		s := DefaultSettings()
		q := newTestQuestion(t, span, s)
		got := q.FormatForNote(s)
		c := q.Composite()
		if body := c.Body(); strings.TrimSpace(body) != body {
			t.Errorf("Body() = %q; has surrounding whitespace", body)
		}

		q2 := newTestQuestion(t, got, s)
		if diff := cmp.Diff(got, q2.FormatForNote(s)); diff != "" {
			t.Errorf("Format not idempotent for %q (-first +second):\n%s", span, diff)
		}
		if c.Fingerprint() != q2.Composite().Fingerprint() {
			t.Errorf("Fingerprint changed after formatting %q", span)
		}
	})
}
