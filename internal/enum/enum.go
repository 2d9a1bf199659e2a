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

// enum is a helper for generating boilerplate related to Go flag sets.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/bufbuild/numparse/internal/enum foo.yaml
//
// The YAML file must contain an array of the Enum type defined in this
// package. The output is written next to it, to foo.yaml.go.
package main

import (
	"bytes"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

type Enum struct {
	Name    string   `yaml:"name"`    // The name of the flag set type.
	Docs    string   `yaml:"docs"`    // Documentation for the generated tables.
	Lookup  string   `yaml:"lookup"`  // The name of the by-name lookup function, if any.
	Flags   []string `yaml:"flags"`   // Primitive flags, in bit order.
	Presets []string `yaml:"presets"` // Named unions of flags, in String() preference order.
}

// Var returns the prefix used for the generated table variables.
func (e Enum) Var() string {
	if e.Name == "" {
		return ""
	}
	return strings.ToLower(e.Name[:1]) + e.Name[1:]
}

// Names returns every flag and preset name, flags first.
func (e Enum) Names() []string {
	names := make([]string, 0, len(e.Flags)+len(e.Presets))
	names = append(names, e.Flags...)
	return append(names, e.Presets...)
}

func (e Enum) validate() error {
	if e.Name == "" {
		return errors.New("missing name")
	}
	seen := make(map[string]bool)
	for _, name := range e.Names() {
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("%s: duplicate name %q", e.Name, name)
		}
		seen[key] = true
	}
	return nil
}

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts a data into doc comments.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

type input struct {
	Binary, Package, Config string
	YAML                    []Enum
}

// Generate renders the Go source for in.
func Generate(in input) ([]byte, error) {
	for _, e := range in.YAML {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"lower":    strings.ToLower,
	}).Parse(tmplText)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := tmpl.ExecuteTemplate(&out, "enum.go.tmpl", in); err != nil {
		return nil, err
	}
	return format.Source(out.Bytes())
}

func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	var in input
	in.Package = os.Getenv("GOPACKAGE")
	in.Config = config

	buildinfo, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	in.Binary = buildinfo.Path

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(text, &in.YAML); err != nil {
		return err
	}

	src, err := Generate(in)
	if err != nil {
		return err
	}
	return os.WriteFile(config+".go", src, 0o644)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
