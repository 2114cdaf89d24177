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
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"zombiezen.com/go/flashcard/schedule"
)

// Settings is the subset of user configuration
// that affects how question text is parsed and written.
type Settings struct {
	// ConvertFoldersToDecks derives a question's topic path from its note's folder.
	// A topic tag at the start of a question is still removed from the body,
	// but it is not kept as the question's topic path.
	ConvertFoldersToDecks bool `yaml:"convertFoldersToDecks"`
	// CardCommentOnSameLine places the schedule comment
	// on the same line as the question instead of the following line.
	CardCommentOnSameLine bool `yaml:"cardCommentOnSameLine"`
	// EditLaterTag marks questions that the user wants to revisit.
	EditLaterTag string `yaml:"editLaterTag"`
	// BaseEase is the ease written for cards without a schedule.
	BaseEase int `yaml:"baseEase"`
}

// DefaultSettings returns the settings used when no configuration is present.
func DefaultSettings() *Settings {
	return &Settings{
		ConvertFoldersToDecks: false,
		CardCommentOnSameLine: false,
		EditLaterTag:          "#edit-later",
		BaseEase:              250,
	}
}

// LoadSettings reads YAML-encoded settings from r.
// Keys missing from the document keep their default value.
func LoadSettings(r io.Reader) (*Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if s.BaseEase <= 0 {
		return nil, fmt.Errorf("load settings: baseEase must be positive (got %d)", s.BaseEase)
	}
	return s, nil
}

// DummySchedule returns the placeholder schedule for cards that have not been reviewed.
func (s *Settings) DummySchedule() schedule.Info {
	return schedule.Dummy(s.BaseEase)
}
