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

package numparse

import (
	"errors"
	"fmt"

	"github.com/bufbuild/numparse/internal/caret"
)

// The kinds of parse failure. Every error returned by a Parse function wraps
// exactly one of these; test for them with [errors.Is].
var (
	// ErrNilInput is returned for a nil byte slice. An empty input is not
	// nil; it is malformed.
	ErrNilInput = errors.New("input is nil")

	// ErrFormat is returned for text that is not a numeral under the
	// requested styles.
	ErrFormat = errors.New("input is not in a correct format")

	// ErrOverflow is returned for a well-formed numeral that the target type
	// cannot represent, either because it is too large or too small, or
	// because an integer target was given a fractional part.
	ErrOverflow = errors.New("value was either too large or too small")
)

// Error is the error returned by the Parse functions.
type Error struct {
	Func  string // The function that failed, such as "ParseInt32".
	Input string // The input; empty for a nil input.

	// For ErrFormat, the byte offset in Input at which scanning stopped.
	// Zero otherwise.
	Offset int

	Err error // One of ErrNilInput, ErrFormat, or ErrOverflow.
}

// Error implements [error].
func (e *Error) Error() string {
	return fmt.Sprintf("numparse.%s: parsing %q: %v", e.Func, e.Input, e.Err)
}

// Unwrap returns the kind of failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// Snippet renders the input on one line with a caret under Offset on the
// next. Unprintable characters, including NUL and no-break space, are shown
// as <U+NNNN>.
func (e *Error) Snippet() string {
	return caret.Snippet(e.Input, e.Offset)
}
