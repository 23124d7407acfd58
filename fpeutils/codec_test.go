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
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"testing"
)

var testCodec = []struct {
	alphabet string
	radix    int
	input    string
	output   []uint16
}{
	{
		"0123456789abcdefghijklmnopqrstuvwxyz ",
		37,
		"hello world",
		[]uint16{17, 14, 21, 21, 24, 36, 32, 24, 27, 21, 13},
	},
	{
		"hello world",
		8,
		"hello world",
		[]uint16{0, 1, 2, 2, 3, 4, 5, 3, 6, 2, 7},
	},
	{
		"hello world⌘-",
		10,
		"⌘ - hello world",
		[]uint16{8, 4, 9, 4, 0, 1, 2, 2, 3, 4, 5, 3, 6, 2, 7},
	},
}

func TestCodec(t *testing.T) {
	for idx, tc := range testCodec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			al, err := NewCodec(tc.alphabet)
			if err != nil {
				t.Fatalf("Error making codec: %s", err)
			}
			if al.Radix() != tc.radix {
				t.Fatalf("Incorrect radix %d - expected %d", al.Radix(), tc.radix)
			}

			es, err := al.Encode(tc.input)
			if err != nil {
				t.Fatalf("Unable to encode '%s' using alphabet '%s': %s", tc.input, tc.alphabet, err)
			}

			if !reflect.DeepEqual(tc.output, es) {
				t.Fatalf("Encode output incorrect: %v", es)
			}

			s, err := al.Decode(es)
			if err != nil {
				t.Fatalf("Unable to decode: %s", err)
			}

			if s != tc.input {
				t.Fatalf("Decode error: got '%s' expected '%s'", s, tc.input)
			}
		})
	}
}

func TestEncoder(t *testing.T) {
	tests := []struct {
		alphabet string
		radix    int
		input    string
	}{
		{"", 0, "hello world"},
		{"helloworld", 7, "hello world"},
	}

	for idx, tc := range tests {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			al, err := NewCodec(tc.alphabet)
			if err != nil {
				t.Fatalf("Error making codec: %s", err)
			}
			if al.Radix() != tc.radix {
				t.Fatalf("Incorrect radix %d - expected %d", al.Radix(), tc.radix)
			}

			_, err = al.Encode(tc.input)
			if !errors.Is(err, ErrInvalidSymbol) {
				t.Fatalf("Encode: expected ErrInvalidSymbol for input '%s', alphabet '%s', got %v", tc.input, tc.alphabet, err)
			}
		})
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	al, err := RadixCodec(10)
	if err != nil {
		t.Fatalf("Error making codec: %s", err)
	}
	if _, err := al.Decode([]uint16{1, 10}); err == nil {
		t.Fatalf("expected error for numeral outside the alphabet")
	}
}

func TestRadixCodec(t *testing.T) {
	for radix := MinRadix; radix <= MaxRadix; radix++ {
		al, err := RadixCodec(radix)
		if err != nil {
			t.Fatalf("radix %d: %s", radix, err)
		}
		if al.Radix() != radix || al.Alphabet() != Base62[:radix] {
			t.Fatalf("radix %d: got alphabet %q", radix, al.Alphabet())
		}
	}

	for _, radix := range []int{-5, 0, 1, 63, 100} {
		if _, err := RadixCodec(radix); !errors.Is(err, ErrInvalidRadix) {
			t.Fatalf("radix %d: expected ErrInvalidRadix, got %v", radix, err)
		}
		if _, err := GMPCodec(radix); !errors.Is(err, ErrInvalidRadix) {
			t.Fatalf("radix %d: expected ErrInvalidRadix, got %v", radix, err)
		}
	}
}

func TestGMPCodec(t *testing.T) {
	al, err := GMPCodec(36)
	if err != nil {
		t.Fatalf("Error making codec: %s", err)
	}
	if al.Alphabet() != "0123456789abcdefghijklmnopqrstuvwxyz" {
		t.Fatalf("radix 36: got %q", al.Alphabet())
	}

	al, err = GMPCodec(62)
	if err != nil {
		t.Fatalf("Error making codec: %s", err)
	}
	v, err := al.StringToInt("A")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if v.Int64() != 10 {
		t.Fatalf("GMP ordering: 'A' = %d, expected 10", v.Int64())
	}
	v, err = al.StringToInt("a")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if v.Int64() != 36 {
		t.Fatalf("GMP ordering: 'a' = %d, expected 36", v.Int64())
	}
}

func TestStringToInt(t *testing.T) {
	tests := []struct {
		radix    int
		input    string
		expected int64
	}{
		{10, "0123456789", 123456789},
		{16, "ff", 255},
		{36, "z", 35},
		{62, "Z", 61},
		{62, "10", 62},
		{2, "", 0},
	}

	for _, tt := range tests {
		al, err := RadixCodec(tt.radix)
		if err != nil {
			t.Fatalf("Error making codec: %s", err)
		}
		v, err := al.StringToInt(tt.input)
		if err != nil {
			t.Fatalf("StringToInt(%q, %d): %s", tt.input, tt.radix, err)
		}
		if v.Int64() != tt.expected {
			t.Fatalf("StringToInt(%q, %d) = %s, expected %d", tt.input, tt.radix, v, tt.expected)
		}
	}

	// Uppercase is not folded into lowercase below radix 37.
	al, _ := RadixCodec(16)
	if _, err := al.StringToInt("FF"); !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("expected ErrInvalidSymbol, got %v", err)
	}
}

func TestIntToString(t *testing.T) {
	al, err := RadixCodec(62)
	if err != nil {
		t.Fatalf("Error making codec: %s", err)
	}

	s, err := al.IntToString(big.NewInt(62*62-1), 4)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if s != "00ZZ" {
		t.Fatalf("got %q, expected 00ZZ", s)
	}

	if _, err := al.IntToString(big.NewInt(62*62), 2); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}

	s, err = al.IntToString(big.NewInt(0), 0)
	if err != nil || s != "" {
		t.Fatalf("got %q (%v), expected empty string", s, err)
	}
}
