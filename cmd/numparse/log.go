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
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

func prInfo(w io.Writer, color *color.Color, format string, a ...any) {
	if colorful {
		color.Fprint(w, "[INF] ")
		color.Fprintf(w, format, a...)
	} else {
		fmt.Fprint(w, "[INF] ")
		fmt.Fprintf(w, format, a...)
	}
}

func prErr(w io.Writer, color *color.Color, format string, a ...any) {
	if colorful {
		color.Fprint(w, "[ERR] ")
		color.Fprintf(w, format, a...)
	} else {
		fmt.Fprint(w, "[ERR] ")
		fmt.Fprintf(w, format, a...)
	}
}
