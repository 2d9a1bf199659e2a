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

package decimal

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// decomposer is the decimal interchange interface that database/sql drivers
// recognize. The coefficient is a big-endian base-2 integer and the value is
// (neg) coefficient × 10^exponent. Form 0 is finite, 1 infinite, 2 NaN.
type decomposer interface {
	Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32)
	Compose(form byte, negative bool, coefficient []byte, exponent int32) error
}

var _ decomposer = (*Decimal)(nil)

// Decompose implements the database/sql decimal decomposer interface.
//
// If buf has room for 12 bytes, it is used for the coefficient.
func (d *Decimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	if cap(buf) < 12 {
		buf = make([]byte, 12)
	}
	buf = buf[:12]
	binary.BigEndian.PutUint32(buf[:4], d.hi)
	binary.BigEndian.PutUint64(buf[4:], d.lo)

	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return 0, d.neg, buf[i:], -int32(d.scale)
}

// Compose implements the database/sql decimal decomposer interface.
//
// Infinities and NaNs are not representable. Positive exponents are folded
// into the coefficient; negative exponents beyond MaxScale must be exact,
// that is, only strip trailing zeros.
func (d *Decimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	switch form {
	case 0:
	case 1, 2:
		return fmt.Errorf("decimal: form %d is not representable", form)
	default:
		return fmt.Errorf("decimal: unknown form: %v", form)
	}

	coeff := new(big.Int).SetBytes(coefficient)
	ten := big.NewInt(10)
	for ; exponent > 0; exponent-- {
		coeff.Mul(coeff, ten)
		if coeff.BitLen() > 96 {
			return fmt.Errorf("decimal: value out of range")
		}
	}
	var rem big.Int
	for ; exponent < -MaxScale; exponent++ {
		var q big.Int
		q.QuoRem(coeff, ten, &rem)
		if rem.Sign() != 0 {
			return fmt.Errorf("decimal: exponent %d out of range", exponent)
		}
		coeff = &q
	}
	if coeff.BitLen() > 96 {
		return fmt.Errorf("decimal: value out of range")
	}

	var word [12]byte
	coeff.FillBytes(word[:])
	*d = Decimal{
		hi:    binary.BigEndian.Uint32(word[:4]),
		lo:    binary.BigEndian.Uint64(word[4:]),
		scale: uint8(-exponent),
		neg:   negative,
	}
	return nil
}
