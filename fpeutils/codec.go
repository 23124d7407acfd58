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

// Package fpeutils provides the radix codec used by the FFX
// format-preserving encryption package: alphabet to numeral mapping,
// numeral to integer conversion and fixed-length byte helpers.
package fpeutils

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"
)

const (
	// MinRadix and MaxRadix bound the radices accepted by RadixCodec and GMPCodec.
	MinRadix = 2
	MaxRadix = 62

	// Base62 is the canonical alphabet: digits, then lowercase, then uppercase.
	// The alphabet for radix r is its first r symbols.
	Base62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// gmpUpperFirst is the GMP digit ordering used for radices above 36.
	gmpUpperFirst = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

var (
	// ErrInvalidRadix is returned when a radix falls outside [MinRadix, MaxRadix].
	ErrInvalidRadix = errors.New("radix must be between 2 and 62, inclusive")
	// ErrInvalidSymbol is returned when a string holds a character outside the alphabet.
	ErrInvalidSymbol = errors.New("symbol not in alphabet")
	// ErrOverflow is returned when a value needs more digits than the destination holds.
	ErrOverflow = errors.New("value does not fit in destination length")
)

// Codec supports the conversion of an arbitrary alphabet into ordinal
// values from 0 to length of alphabet-1.
// Element 'rtu' (rune-to-uint16) supports the mapping from runes to ordinal values.
// Element 'utr' (uint16-to-rune) supports the mapping from ordinal values to runes.
type Codec struct {
	rtu map[rune]uint16
	utr []rune
}

// NewCodec builds a Codec from the set of unique characters taken from the string s.
// Duplicates are ignored, so the first occurrence of a rune fixes its ordinal.
func NewCodec(s string) (Codec, error) {
	var ret Codec
	ret.rtu = make(map[rune]uint16)
	ret.utr = make([]rune, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		if _, ok := ret.rtu[rv]; ok {
			continue
		}
		if len(ret.utr) == 65536 {
			return ret, fmt.Errorf("alphabet must contain no more than 65536 characters")
		}
		ret.rtu[rv] = uint16(len(ret.utr))
		ret.utr = append(ret.utr, rv)
	}
	return ret, nil
}

// RadixCodec returns the codec for the first radix symbols of Base62.
func RadixCodec(radix int) (Codec, error) {
	if radix < MinRadix || radix > MaxRadix {
		return Codec{}, fmt.Errorf("%w: got %d", ErrInvalidRadix, radix)
	}
	return NewCodec(Base62[:radix])
}

// GMPCodec returns the codec whose digit ordering matches GMP's
// mpz_get_str: lowercase letters up to radix 36, uppercase before
// lowercase above it.
func GMPCodec(radix int) (Codec, error) {
	if radix < MinRadix || radix > MaxRadix {
		return Codec{}, fmt.Errorf("%w: got %d", ErrInvalidRadix, radix)
	}
	if radix <= 36 {
		return NewCodec(Base62[:radix])
	}
	return NewCodec(gmpUpperFirst[:radix])
}

// Radix returns the size of the alphabet supported by the Codec.
func (a *Codec) Radix() int {
	return len(a.utr)
}

// Alphabet returns the symbols of the Codec in ordinal order.
func (a *Codec) Alphabet() string {
	return string(a.utr)
}

// Encode the supplied string as an array of ordinal values giving the
// position of each character in the alphabet.
// It is an error for the supplied string to contain characters that are not
// in the alphabet.
func (a *Codec) Encode(s string) ([]uint16, error) {
	ret := make([]uint16, utf8.RuneCountInString(s))

	var ok bool
	i := 0
	for _, rv := range s {
		ret[i], ok = a.rtu[rv]
		if !ok {
			return ret, fmt.Errorf("%w: character %q at position %d", ErrInvalidSymbol, rv, i)
		}
		i++
	}
	return ret, nil
}

// Decode constructs a string from an array of ordinal values where each
// value specifies the position of the character in the alphabet.
// It is an error for the array to contain values outside the boundary of the
// alphabet.
func (a *Codec) Decode(n []uint16) (string, error) {
	ret := make([]rune, len(n))
	for i, v := range n {
		if int(v) > len(a.utr)-1 {
			return "", fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, v, len(a.utr)-1)
		}
		ret[i] = a.utr[v]
	}
	return string(ret), nil
}

// StringToInt interprets s as a numeral in the radix of the Codec.
func (a *Codec) StringToInt(s string) (*big.Int, error) {
	numerals, err := a.Encode(s)
	if err != nil {
		return nil, err
	}
	x, err := Num(numerals, uint64(a.Radix()))
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// IntToString renders v in the radix of the Codec, left-padded with the
// zero symbol to exactly length characters.
func (a *Codec) IntToString(v *big.Int, length int) (string, error) {
	r, err := Str(v, make([]uint16, length), uint64(a.Radix()))
	if err != nil {
		return "", err
	}
	return a.Decode(r)
}
