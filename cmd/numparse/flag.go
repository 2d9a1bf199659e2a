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
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/bufbuild/numparse/internal/target"
)

var colorful bool

// config holds the defaults that can be set through the environment.
type config struct {
	Culture string `env:"NUMPARSE_CULTURE" envDefault:"en-US"`
	Styles  string `env:"NUMPARSE_STYLES"`
	Type    string `env:"NUMPARSE_TYPE" envDefault:"float64"`
	Jobs    int    `env:"NUMPARSE_JOBS"`
}

type flags struct {
	target  target.Type
	styles  string
	culture string
	json    bool
	jobs    int
	noColor bool
}

func parseFlags() (*flags, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	var f flags
	if err := f.target.Set(cfg.Type); err != nil {
		return nil, fmt.Errorf("NUMPARSE_TYPE: %w", err)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: numparse [flags] [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Parses each line of the given files (or stdin) as a number.\n\n")
		flag.PrintDefaults()
	}

	flag.VarP(&f.target, "type", "t", "type to parse into: int32, int64, uint32, uint64, float32, float64, decimal or big")
	flag.StringVarP(&f.styles, "styles", "s", cfg.Styles, "number styles, such as \"Currency\" or \"Integer|AllowHexSpecifier\" (default depends on --type)")
	flag.StringVarP(&f.culture, "culture", "c", cfg.Culture, "culture name or Accept-Language list")
	flag.BoolVar(&f.json, "json", false, "print one JSON object per line")
	flag.IntVarP(&f.jobs, "jobs", "j", cfg.Jobs, "number of lines to parse concurrently (0 means GOMAXPROCS)")
	flag.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	flag.Parse()

	if f.jobs <= 0 {
		f.jobs = runtime.GOMAXPROCS(-1)
	}
	f.noColor = f.noColor || !isatty.IsTerminal(os.Stdout.Fd())
	colorful = !f.noColor

	return &f, nil
}
