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

// Command numparse parses numbers, one per line, the way the numparse
// package does, and prints each value back in the general format.
//
//	$ printf '1,234.5\n(12)\n12x\n' | numparse --type decimal --styles Number
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/styles"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("numparse: ")

	f, err := parseFlags()
	if err != nil {
		log.Fatal(err)
	}

	info, ok := culture.Default().Lookup(f.culture)
	if !ok {
		info = culture.Default().MatchString(f.culture)
		if !f.json {
			prInfo(os.Stderr, yellow, "no culture named %q, using %q\n", f.culture, info.Name)
		}
	}

	s := f.target.Styles()
	if f.styles != "" {
		s, err = styles.Parse(f.styles)
		if err != nil {
			log.Fatal(err)
		}
	}

	lines, err := readFiles(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := &parser{target: f.target, styles: s, info: info, jobs: f.jobs}
	results, err := p.run(ctx, lines)
	if err != nil {
		log.Fatal(err)
	}

	failed, err := report(os.Stdout, results, f.json)
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		stop()
		os.Exit(1)
	}
}
