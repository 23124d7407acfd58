/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package fpeutils

import (
	"fmt"
	"math/big"
)

// Num constructs a big.Int from an array of uint16, where each element represents
// one digit in the given radix.  The array is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1.
func Num(s []uint16, radix uint64) (big.Int, error) {
	var bigRadix, bv, x big.Int
	if radix > 65536 {
		return x, fmt.Errorf("Radix (%d) too big: max supported radix is 65536", radix)
	}

	maxv := uint16(radix - 1)
	bigRadix.SetUint64(radix)
	for i, v := range s {
		if v > maxv {
			return x, fmt.Errorf("Value at %d out of range: got %d - expected 0..%d", i, v, maxv)
		}
		bv.SetUint64(uint64(v))
		x.Mul(&x, &bigRadix)
		x.Add(&x, &bv)
	}
	return x, nil
}

// Str populates an array of uint16 with digits representing big.Int x in the specified radix.
// The array is arranged with the most significant digit in element 0.
// The array is built from big.Int x from the least significant digit upwards.  If the supplied
// array is too short, ErrOverflow is returned.
func Str(x *big.Int, r []uint16, radix uint64) ([]uint16, error) {
	var bigRadix, mod, v big.Int
	if radix > 65536 {
		return r, fmt.Errorf("Radix (%d) too big: max supported radix is 65536", radix)
	}
	if x.Sign() < 0 {
		return r, fmt.Errorf("negative value %s has no numeral representation", x)
	}
	m := len(r)
	v.Set(x)
	bigRadix.SetUint64(radix)
	for i := range r {
		v.DivMod(&v, &bigRadix, &mod)
		r[m-i-1] = uint16(mod.Uint64())
	}
	if v.Sign() != 0 {
		return r, fmt.Errorf("%w: %s remains after conversion to %d digits", ErrOverflow, &v, m)
	}
	return r, nil
}

// Pow returns radix^m, the modulus for numerals of length m.
func Pow(radix uint64, m int) *big.Int {
	var bm big.Int
	bm.SetInt64(int64(m))
	return new(big.Int).Exp(new(big.Int).SetUint64(radix), &bm, nil)
}

// BytesToInt interprets b as an unsigned big-endian integer.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// IntToBytes returns the big-endian bytes of v in exactly length bytes,
// left-padded with zeros or cut down to the low-order length bytes.
func IntToBytes(v *big.Int, length int) []byte {
	return FixedLengthBytes(v.Bytes(), length, 0x00)
}

// FixedLengthBytes left-pads data with pad up to length bytes. Longer
// input keeps only its trailing length bytes. The result never aliases data.
func FixedLengthBytes(data []byte, length int, pad byte) []byte {
	if length <= 0 {
		return []byte{}
	}
	out := make([]byte, length)
	if len(data) >= length {
		copy(out, data[len(data)-length:])
		return out
	}
	fill := length - len(data)
	for i := 0; i < fill; i++ {
		out[i] = pad
	}
	copy(out[fill:], data)
	return out
}
