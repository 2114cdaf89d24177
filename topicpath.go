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

// TopicPath is a hierarchical deck name such as "flashcards/science".
type TopicPath struct {
	Path []string
}

// TopicPathFromTag converts a tag such as "#flashcards/science"
// into a topic path.
// Empty segments are dropped.
func TopicPathFromTag(tag string) TopicPath {
	tag = strings.TrimPrefix(tag, "#")
	var path []string
	for _, segment := range strings.Split(tag, "/") {
		if segment != "" {
			path = append(path, segment)
		}
	}
	return TopicPath{Path: path}
}

// TopicPathFromCardText returns the topic path of the tag
// at the start of text (ignoring leading whitespace).
// ok is false if text does not start with a tag
// or if the tag does not name a path.
func TopicPathFromCardText(text string) (tp TopicPath, ok bool) {
	tag := defaultPatterns.TopicTag.FindString(trimLeadingSpace(text))
	if tag == "" {
		return TopicPath{}, false
	}
	tp = TopicPathFromTag(tag)
	return tp, tp.HasPath()
}

// HasPath reports whether tp has at least one segment.
func (tp TopicPath) HasPath() bool {
	return len(tp.Path) > 0
}

// String returns the segments of tp joined by slashes.
func (tp TopicPath) String() string {
	return strings.Join(tp.Path, "/")
}

// FormatAsTag returns tp as a tag, like "#flashcards/science".
func (tp TopicPath) FormatAsTag() string {
	return "#" + tp.String()
}

// Equal reports whether tp and other have the same segments.
func (tp TopicPath) Equal(other TopicPath) bool {
	if len(tp.Path) != len(other.Path) {
		return false
	}
	for i := range tp.Path {
		if tp.Path[i] != other.Path[i] {
			return false
		}
	}
	return true
}

// TopicPathWithWhitespace is a topic tag found at the start of a question
// together with the whitespace on either side of it,
// so that the question can be written back unchanged.
type TopicPathWithWhitespace struct {
	Pre  string
	Tag  string // verbatim tag text, including the leading '#'
	Path TopicPath
	Post string
}

// Format returns the tag and its surrounding whitespace as they appeared in the note.
func (t TopicPathWithWhitespace) Format() string {
	return t.Pre + t.Tag + t.Post
}

// TopicPathList is an ordered set of topic paths.
// The zero value is an empty list.
type TopicPathList struct {
	paths []TopicPath
}

// NewTopicPathList returns a list containing each distinct path of paths
// in order of first appearance.
func NewTopicPathList(paths ...TopicPath) TopicPathList {
	var list TopicPathList
	for _, tp := range paths {
		list.Add(tp)
	}
	return list
}

// Add appends tp to the list if it is not already present.
// Empty paths are ignored.
func (list *TopicPathList) Add(tp TopicPath) {
	if !tp.HasPath() || list.Contains(tp) {
		return
	}
	list.paths = append(list.paths, tp)
}

// Contains reports whether tp is in the list.
func (list TopicPathList) Contains(tp TopicPath) bool {
	for _, elem := range list.paths {
		if elem.Equal(tp) {
			return true
		}
	}
	return false
}

// Len returns the number of paths in the list.
func (list TopicPathList) Len() int {
	return len(list.paths)
}

// Paths returns the paths in the list.
// The caller must not modify the returned slice.
func (list TopicPathList) Paths() []TopicPath {
	return list.paths
}
