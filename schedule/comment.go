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

package schedule

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var (
	commentRE = regexp.MustCompile(`<!--SR:.+-->`)
	entryRE   = regexp.MustCompile(`!([\d-]+),(\d+),(\d+)`)
)

// RemoveComment returns text with every schedule comment removed.
// A schedule comment never spans more than one line.
// Whitespace around the comment is left in place.
func RemoveComment(text string) string {
	return commentRE.ReplaceAllLiteralString(text, "")
}

// HasComment reports whether text contains a schedule comment.
func HasComment(text string) bool {
	return commentRE.MatchString(text)
}

// FormatComment returns the schedule comment holding each of infos in order.
func FormatComment(infos []Info) string {
	sb := new(strings.Builder)
	sb.WriteString(CommentBegin)
	for _, info := range infos {
		sb.WriteString(info.Format())
	}
	sb.WriteString(CommentEnd)
	return sb.String()
}

// ParseComment returns the entries of the first schedule comment in text.
// It returns (nil, nil) if text does not contain a schedule comment.
// Comments are found with an HTML tokenizer,
// so a schedule comment inside markup such as an attribute value is not reported.
func ParseComment(text string) ([]Info, error) {
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("parse schedule comment: %w", err)
			}
			return nil, nil
		case html.CommentToken:
			data := string(z.Text())
			if !strings.HasPrefix(data, "SR:") {
				continue
			}
			infos, err := parseEntries(data[len("SR:"):])
			if err != nil {
				return nil, fmt.Errorf("parse schedule comment: %w", err)
			}
			return infos, nil
		}
	}
}

func parseEntries(s string) ([]Info, error) {
	matches := entryRE.FindAllStringSubmatch(s, -1)
	infos := make([]Info, 0, len(matches))
	for i, m := range matches {
		due, err := time.Parse(dateLayout, m[1])
		if err != nil {
			return nil, fmt.Errorf("entry %d: due date: %w", i+1, err)
		}
		interval, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("entry %d: interval: %w", i+1, err)
		}
		ease, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("entry %d: ease: %w", i+1, err)
		}
		infos = append(infos, Info{
			Due:      due,
			Interval: interval,
			Ease:     ease,
		})
	}
	return infos, nil
}
