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
	"strconv"
	"unicode/utf16"
)

// Fingerprint identifies the content of a question.
// Only the low 53 bits are used.
type Fingerprint uint64

// String returns the fingerprint in lowercase hexadecimal.
func (f Fingerprint) String() string {
	return strconv.FormatUint(uint64(f), 16)
}

// computeFingerprint hashes the identity-bearing part of a question:
// the topic tag with its whitespace followed by the body.
// Leading indentation, the schedule comment and the block identifier
// do not contribute.
func computeFingerprint(tp TopicPathWithWhitespace, hasTopicPath bool, body string) Fingerprint {
	if !hasTopicPath {
		return cyrb53(body, 0)
	}
	return cyrb53(tp.Format()+body, 0)
}

// cyrb53 is a 53-bit non-cryptographic hash over the UTF-16 code units of s.
// Identities written by other implementations of the format
// use the same function, so it must not be changed.
func cyrb53(s string, seed uint32) Fingerprint {
	h1 := 0xdeadbeef ^ seed
	h2 := 0x41c6ce57 ^ seed
	mix := func(ch uint32) {
		h1 = (h1 ^ ch) * 2654435761
		h2 = (h2 ^ ch) * 1597334677
	}
	for _, c := range s {
		if c >= 0x10000 {
			r1, r2 := utf16.EncodeRune(c)
			mix(uint32(r1))
			mix(uint32(r2))
		} else {
			mix(uint32(c))
		}
	}
	h1 = (h1^(h1>>16))*2246822507 ^ (h2^(h2>>13))*3266489909
	h2 = (h2^(h2>>16))*2246822507 ^ (h1^(h1>>13))*3266489909
	return Fingerprint(uint64(h2&0x1fffff)<<32 | uint64(h1))
}
