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

// Package target names the types that text can be parsed into, so that
// tools and tests can choose one at run time.
package target

import (
	"fmt"
	"strings"

	"github.com/bufbuild/numparse"
	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/styles"
)

// Type is a parse target. It implements [pflag.Value].
//
// [pflag.Value]: https://pkg.go.dev/github.com/spf13/pflag#Value
type Type int

const (
	Int32 Type = iota
	Int64
	Uint32
	Uint64
	Float32
	Float64
	Decimal
	BigInt
)

var names = [...]string{
	Int32:   "int32",
	Int64:   "int64",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Decimal: "decimal",
	BigInt:  "big",
}

// Lookup returns the Type with the given name.
func Lookup(name string) (Type, bool) {
	for t, n := range names {
		if strings.EqualFold(n, name) {
			return Type(t), true
		}
	}
	return 0, false
}

// String implements [fmt.Stringer].
func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("target.Type(%d)", int(t))
	}
	return names[t]
}

// Set implements [pflag.Value].
//
// [pflag.Value]: https://pkg.go.dev/github.com/spf13/pflag#Value
func (t *Type) Set(name string) error {
	v, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown type %q, want one of %s", name, strings.Join(names[:], ", "))
	}
	*t = v
	return nil
}

// Type implements [pflag.Value].
//
// [pflag.Value]: https://pkg.go.dev/github.com/spf13/pflag#Value
func (t *Type) Type() string {
	return "type"
}

// Styles returns the styles a numeral of this type is usually written in.
func (t Type) Styles() styles.Styles {
	switch t {
	case Float32, Float64:
		return styles.Float | styles.AllowThousands
	case Decimal:
		return styles.Number
	default:
		return styles.Integer
	}
}

// Parse parses text as t and renders the result in the general format of
// info. On failure, the error is a [*numparse.Error].
func (t Type) Parse(text string, s styles.Styles, info *culture.Info) (string, error) {
	switch t {
	case Int32:
		return render(numparse.ParseInt32(text, s, info))(numparse.FormatInt[int32], info)
	case Int64:
		return render(numparse.ParseInt64(text, s, info))(numparse.FormatInt[int64], info)
	case Uint32:
		return render(numparse.ParseUint32(text, s, info))(numparse.FormatUint[uint32], info)
	case Uint64:
		return render(numparse.ParseUint64(text, s, info))(numparse.FormatUint[uint64], info)
	case Float32:
		return render(numparse.ParseFloat32(text, s, info))(numparse.FormatFloat[float32], info)
	case Float64:
		return render(numparse.ParseFloat64(text, s, info))(numparse.FormatFloat[float64], info)
	case Decimal:
		return render(numparse.ParseDecimal(text, s, info))(numparse.FormatDecimal, info)
	case BigInt:
		v, err := numparse.ParseBigInt(text, s, info)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	default:
		return "", fmt.Errorf("target: invalid type %v", t)
	}
}

// render defers formatting a parse result until the formatter is known.
func render[T any](v T, err error) func(func(T, string, *culture.Info) (string, error), *culture.Info) (string, error) {
	return func(format func(T, string, *culture.Info) (string, error), info *culture.Info) (string, error) {
		if err != nil {
			return "", err
		}
		return format(v, "G", info)
	}
}
