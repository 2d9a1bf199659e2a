// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package caret_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/numparse/internal/caret"
)

func TestSnippet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		offset int
		want   string
	}{
		{text: "12x", offset: 2, want: "12x\n  ^"},
		{text: "12", offset: 2, want: "12\n  ^"},
		{text: "12", offset: 10, want: "12\n  ^"},
		{text: "12", offset: -1, want: "12\n^"},
		{text: "", offset: 0, want: "\n^"},
		{text: "a\tb", offset: 2, want: "a   b\n    ^"},
		{text: "1\x002", offset: 2, want: "1<U+0000>2\n         ^"},
		{text: "1\n", offset: 1, want: "1<U+000A>\n ^"},
		{text: "\xff1", offset: 1, want: "<FF>1\n    ^"},
		{text: "１２x", offset: 6, want: "１２x\n    ^"},
		{text: "€ 5", offset: 4, want: "€ 5\n  ^"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, caret.Snippet(tt.text, tt.offset), "%q at %d", tt.text, tt.offset)
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	w := caret.Width{Column: 2, Tabstop: 8}
	w.WriteString("\t")
	assert.Equal(t, 8, w.Column)
	w.WriteString("ab\x01")
	assert.Equal(t, 18, w.Column)

	var out strings.Builder
	w = caret.Width{Tabstop: 4, Out: &out}
	w.WriteString("ab\tc")
	assert.Equal(t, 5, w.Column)
	assert.Equal(t, "ab  c", out.String())
}
