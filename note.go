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
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
)

// NoteFile is the storage of a note's text.
type NoteFile interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, text string) error
}

// OSFile is a [NoteFile] on the local filesystem.
// Writes replace the file atomically.
type OSFile struct {
	Path string
}

// Read returns the content of the file.
func (f OSFile) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the content of the file with text.
func (f OSFile) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := atomic.WriteFile(f.Path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}

// A Note is a document containing questions.
// A Note must not be copied after first use.
type Note struct {
	File NoteFile
	// TopicPathList is the set of decks of questions in the note
	// that do not have their own topic tag.
	TopicPathList TopicPathList

	mu sync.Mutex // serializes read-modify-write of File
}

// WriteQuestions writes the dirty questions among qs back to the note.
// The note is read once, each question is applied in order
// to the result of the previous one, and the note is written once.
// Questions whose text can no longer be found are skipped and stay dirty;
// their errors are joined into the returned error.
// All questions must belong to n.
func (n *Note) WriteQuestions(ctx context.Context, s *Settings, qs ...*Question) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, q := range qs {
		if q.Note != n {
			return fmt.Errorf("write questions: question at line %d belongs to a different note", q.LineNo)
		}
	}
	text, err := n.File.Read(ctx)
	if err != nil {
		return fmt.Errorf("write questions: %w", err)
	}
	var applied []*Question
	var previous []CompositeText
	var skipped []error
	for _, q := range qs {
		if !q.Dirty() {
			continue
		}
		prev := q.composite
		newText, err := q.UpdateQuestionText(ctx, text, s)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("line %d: %w", q.LineNo, err))
			continue
		}
		text = newText
		applied = append(applied, q)
		previous = append(previous, prev)
	}
	if len(applied) > 0 {
		if err := n.File.Write(ctx, text); err != nil {
			for i, q := range applied {
				q.composite = previous[i]
			}
			return fmt.Errorf("write questions: %w", err)
		}
		for _, q := range applied {
			q.dirty = false
		}
		zerolog.Ctx(ctx).Debug().
			Int("updated", len(applied)).
			Int("skipped", len(skipped)).
			Msg("Wrote questions to note")
	}
	if len(skipped) > 0 {
		return fmt.Errorf("write questions: %w", errors.Join(skipped...))
	}
	return nil
}

// Write writes the question back to its note
// and marks it clean on success.
// The note is not modified if the question's text cannot be found in it.
func (q *Question) Write(ctx context.Context, s *Settings) error {
	if q.Note == nil {
		return errors.New("write question: no note")
	}
	n := q.Note
	n.mu.Lock()
	defer n.mu.Unlock()

	text, err := n.File.Read(ctx)
	if err != nil {
		return fmt.Errorf("write question: %w", err)
	}
	prev := q.composite
	newText, err := q.UpdateQuestionText(ctx, text, s)
	if err != nil {
		return fmt.Errorf("write question: %w", err)
	}
	if err := n.File.Write(ctx, newText); err != nil {
		// The note still holds the old text.
		q.composite = prev
		return fmt.Errorf("write question: %w", err)
	}
	q.dirty = false
	return nil
}
