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

package culture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/tidwall/btree"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed cultures.yaml
var defaultCultures []byte

// Default returns the registry of cultures that ship with this package.
var Default = sync.OnceValue(func() *Registry {
	infos, err := Load(bytes.NewReader(defaultCultures))
	if err != nil {
		panic(fmt.Sprintf("culture: embedded cultures.yaml: %v", err))
	}
	r, err := NewRegistry(infos...)
	if err != nil {
		panic(fmt.Sprintf("culture: embedded cultures.yaml: %v", err))
	}
	return r
})

// Load decodes a YAML sequence of cultures.
//
// Each entry starts out as a copy of [Invariant], so a document only needs to
// spell out the fields in which a culture differs.
func Load(r io.Reader) ([]*Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("culture: %w", err)
	}

	// Decoding into yaml.Node loses strict field checking, so make a strict
	// pass first.
	var strict []Info
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&strict); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("culture: %w", err)
	}

	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("culture: %w", err)
	}

	infos := make([]*Info, 0, len(nodes))
	for i := range nodes {
		info := *Invariant
		info.NumberGroupSizes = slices.Clone(Invariant.NumberGroupSizes)
		if err := nodes[i].Decode(&info); err != nil {
			return nil, fmt.Errorf("culture: entry %d: %w", i, err)
		}
		if err := info.Validate(); err != nil {
			return nil, err
		}
		infos = append(infos, &info)
	}
	return infos, nil
}

// Registry is an immutable set of cultures, ordered by name and searchable by
// BCP 47 language tag.
//
// The invariant culture is always present, under the empty name.
type Registry struct {
	byName  btree.Map[string, *Info]
	infos   []*Info // Parallel to the matcher's supported tags.
	matcher language.Matcher
}

// NewRegistry builds a registry out of infos. An info with an empty name
// replaces the invariant culture.
func NewRegistry(infos ...*Info) (*Registry, error) {
	r := new(Registry)
	r.byName.Set("", Invariant)

	for _, info := range infos {
		key := ""
		if info.Name != "" {
			tag, err := language.Parse(info.Name)
			if err != nil {
				return nil, fmt.Errorf("culture: invalid name %q: %w", info.Name, err)
			}
			key = tag.String()
		}
		if _, dup := r.byName.Set(key, info); dup && key != "" {
			return nil, fmt.Errorf("culture: duplicate culture %q", info.Name)
		}
	}

	// The first supported tag is the matcher's fallback, so the invariant
	// culture goes first.
	tags := make([]language.Tag, 0, r.byName.Len())
	r.byName.Scan(func(key string, info *Info) bool {
		if key == "" {
			tags = append(tags, language.Und)
		} else {
			tags = append(tags, language.MustParse(key))
		}
		r.infos = append(r.infos, info)
		return true
	})
	r.matcher = language.NewMatcher(tags)
	return r, nil
}

// Lookup finds a culture by exact name. The names "" and "invariant" both
// refer to the invariant culture.
func (r *Registry) Lookup(name string) (*Info, bool) {
	if name == "" || strings.EqualFold(name, "invariant") {
		return r.byName.Get("")
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, false
	}
	return r.byName.Get(tag.String())
}

// Match returns the culture that best matches the given preferences, falling
// back to the invariant culture when nothing matches.
func (r *Registry) Match(prefs ...language.Tag) *Info {
	_, idx, conf := r.matcher.Match(prefs...)
	if conf == language.No {
		return r.infos[0]
	}
	return r.infos[idx]
}

// MatchString is like [Registry.Match], but takes an Accept-Language style
// list, such as "fr-CH, fr;q=0.9, en;q=0.8".
func (r *Registry) MatchString(accept string) *Info {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil {
		return r.infos[0]
	}
	return r.Match(tags...)
}

// All returns an iterator over the cultures in this registry, in name order.
// The invariant culture comes first.
func (r *Registry) All() iter.Seq[*Info] {
	return func(yield func(*Info) bool) {
		r.byName.Scan(func(_ string, info *Info) bool {
			return yield(info)
		})
	}
}

// Len returns the number of cultures in the registry.
func (r *Registry) Len() int {
	return r.byName.Len()
}
