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

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/internal/target"
)

func TestReadLines(t *testing.T) {
	t.Parallel()

	lines, err := readLines("x", strings.NewReader("1\n\n 2 \n3"))
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, line{file: "x", num: 3, text: " 2 "}, lines[2])
	assert.Equal(t, "3", lines[3].text)
}

func TestRun(t *testing.T) {
	t.Parallel()

	info, ok := culture.Default().Lookup("en-US")
	require.True(t, ok)

	p := &parser{target: target.Int32, styles: target.Int32.Styles(), info: info, jobs: 3}
	lines, err := readLines("in", strings.NewReader("42\n -7 \n12x\n99999999999\n0\n"))
	require.NoError(t, err)

	results, err := p.run(context.Background(), lines)
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.Equal(t, "42", results[0].Value)
	assert.Equal(t, "-7", results[1].Value)
	assert.Equal(t, 3, results[2].Line)
	assert.NotEmpty(t, results[2].Error)
	assert.Equal(t, 2, results[2].Offset)
	assert.Equal(t, "12x\n  ^", results[2].snippet)
	assert.NotEmpty(t, results[3].Error)
	assert.Empty(t, results[3].snippet)
	assert.Equal(t, "0", results[4].Value)

	var out bytes.Buffer
	failed, err := report(&out, results, false)
	require.NoError(t, err)
	assert.Equal(t, 2, failed)
	assert.Contains(t, out.String(), "[INF] in:1: 42\n")
	assert.Contains(t, out.String(), "[ERR] in:3: ")
	assert.Contains(t, out.String(), "12x\n  ^\n")
}

func TestReportJSON(t *testing.T) {
	t.Parallel()

	results := []result{
		{File: "a", Line: 1, Input: "1.5", Value: "1.5"},
		{File: "a", Line: 2, Input: "x", Error: "bad", Offset: 0, snippet: "x\n^"},
	}

	var out bytes.Buffer
	failed, err := report(&out, results, true)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	var got []result
	dec := json.NewDecoder(&out)
	for dec.More() {
		var r result
		require.NoError(t, dec.Decode(&r))
		got = append(got, r)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "1.5", got[0].Value)
	assert.Equal(t, "bad", got[1].Error)
	assert.Empty(t, got[1].snippet)
}
