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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/numparse"
	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/internal/target"
	"github.com/bufbuild/numparse/styles"
)

// line is one line of input, along with where it came from.
type line struct {
	file string
	num  int
	text string
}

// result is the outcome of parsing a single line.
type result struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Value  string `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
	Offset int    `json:"offset,omitempty"`

	snippet string
}

// parser parses lines as a single target type.
type parser struct {
	target target.Type
	styles styles.Styles
	info   *culture.Info
	jobs   int
}

// readLines reads every line of r, naming them after file.
func readLines(file string, r io.Reader) ([]line, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		lines = append(lines, line{file: file, num: n, text: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return lines, nil
}

// readFiles reads the lines of each named file. No names, or the name "-",
// means stdin.
func readFiles(names []string) ([]line, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var lines []line
	for _, name := range names {
		var more []line
		var err error
		if name == "-" {
			more, err = readLines("<stdin>", os.Stdin)
		} else {
			var f *os.File
			f, err = os.Open(name)
			if err != nil {
				return nil, err
			}
			more, err = readLines(name, f)
			f.Close()
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, more...)
	}
	return lines, nil
}

// eval parses a single line.
func (p *parser) eval(l line) result {
	r := result{File: l.file, Line: l.num, Input: l.text}
	value, err := p.target.Parse(l.text, p.styles, p.info)
	if err == nil {
		r.Value = value
		return r
	}

	r.Error = err.Error()
	var perr *numparse.Error
	if errors.As(err, &perr) {
		r.Offset = perr.Offset
		if errors.Is(err, numparse.ErrFormat) {
			r.snippet = perr.Snippet()
		}
	}
	return r
}

// run parses every line, at most p.jobs at a time. Results are returned in
// input order.
func (p *parser) run(ctx context.Context, lines []line) ([]result, error) {
	results := make([]result, len(lines))
	sem := semaphore.NewWeighted(int64(max(p.jobs, 1)))
	grp, gctx := errgroup.WithContext(ctx)
	for i, l := range lines {
		if err := sem.Acquire(gctx, 1); err != nil {
			_ = grp.Wait()
			return nil, err
		}
		grp.Go(func() error {
			defer sem.Release(1)
			results[i] = p.eval(l)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, ctx.Err()
}

// report writes results to w and reports how many of them failed.
func report(w io.Writer, results []result, asJSON bool) (int, error) {
	var failed int
	enc := json.NewEncoder(w)
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
		if asJSON {
			if err := enc.Encode(r); err != nil {
				return failed, err
			}
			continue
		}

		if r.Error == "" {
			prInfo(w, green, "%s:%d: %s\n", r.File, r.Line, r.Value)
			continue
		}
		prErr(w, red, "%s:%d: %s\n", r.File, r.Line, r.Error)
		if r.snippet != "" {
			if colorful {
				yellow.Fprintln(w, r.snippet)
			} else {
				fmt.Fprintln(w, r.snippet)
			}
		}
	}
	return failed, nil
}
