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

// Package excerpt shortens document text for diagnostics.
package excerpt

import "go4.org/bytereplacer"

// DefaultLength is the number of characters kept by callers
// that do not have a better limit.
const DefaultLength = 100

var escaper = bytereplacer.New(
	"\r", `\r`,
	"\n", `\n`,
	"\t", `\t`,
)

// Truncate returns the first n characters of s,
// followed by "..." if anything was cut.
// Line breaks and tabs are escaped so the excerpt stays on one line.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	head := s
	truncated := false
	count := 0
	for i := range s {
		if count == n {
			head = s[:i]
			truncated = true
			break
		}
		count++
	}
	out := escaper.Replace([]byte(head))
	if truncated {
		out = append(out, "..."...)
	}
	return string(out)
}
