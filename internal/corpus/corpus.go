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

// Package corpus provides example question spans
// together with their expected parse and formatted output.
package corpus

import (
	_ "embed"
	"encoding/json"
)

// Example is a single question span.
type Example struct {
	Name string
	Span string
	// SameLine is the value of the cardCommentOnSameLine setting
	// used to format the example.
	SameLine bool

	Leading   string
	TopicPath string // formatted with its whitespace; empty if absent
	Body      string
	BlockID   string
	Direction string

	Formatted string
}

//go:embed questions.json
var questionsData []byte

// Load returns the example questions.
func Load() ([]Example, error) {
	var examples []Example
	if err := json.Unmarshal(questionsData, &examples); err != nil {
		return nil, err
	}
	return examples, nil
}
