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

import "strings"

// EndsWithCodeFence reports whether body ends by closing a fenced code block.
// A schedule comment placed on the same line as a closing fence
// would become part of the code block, so callers use this
// to force the comment onto its own line.
func EndsWithCodeFence(body string) bool {
	if strings.HasSuffix(body, "```") {
		return true
	}
	lastLine := body[strings.LastIndexByte(body, '\n')+1:]
	return parseClosingCodeFence(lastLine) >= 0
}

// parseClosingCodeFence attempts to parse the line as the closing [code fence]
// of a fenced code block.
// It returns the number of fence characters
// or -1 if the line is not a closing code fence.
//
// [code fence]: https://spec.commonmark.org/0.30/#code-fence
func parseClosingCodeFence(line string) (n int) {
	line = strings.TrimRight(line, " \t\r")
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	if indent > 3 {
		return -1
	}
	line = line[indent:]
	if len(line) < 3 {
		return -1
	}
	want := line[0]
	if want != '`' && want != '~' {
		return -1
	}
	for i := 1; i < len(line); i++ {
		if line[i] != want {
			return -1
		}
	}
	return len(line)
}
