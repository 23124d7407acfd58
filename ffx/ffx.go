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

// Package ffx implements the FFX[radix] format-preserving encryption
// scheme: a balanced, 10 round Feistel network over an arbitrary radix
// between 2 and 62 with an AES CBC-MAC round function.
package ffx

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ffx-go/ffxradix/fpeutils"
)

// The round count is part of the header P and is not configurable.
const numRounds = 10

// A Cipher is an instance of FFX[radix] bound to one key and alphabet.
// It is immutable and safe for concurrent use; the tweak is supplied per call.
type Cipher struct {
	codec fpeutils.Codec
	radix uint64
	block BlockCipher
}

// NewCipher initializes a new FFX Cipher for encryption or decryption use
// over the canonical alphabet of radix (0-9, a-z, A-Z) with an AES key of
// 16, 24 or 32 bytes.
func NewCipher(radix int, key []byte) (*Cipher, error) {
	codec, err := fpeutils.RadixCodec(radix)
	if err != nil {
		return nil, err
	}
	return newAESCipher(codec, key)
}

// NewCipherWithAlphabet is like NewCipher but takes the alphabet
// explicitly. Its radix is the number of distinct runes in alphabet.
func NewCipherWithAlphabet(alphabet string, key []byte) (*Cipher, error) {
	codec, err := fpeutils.NewCodec(alphabet)
	if err != nil {
		return nil, err
	}
	return newAESCipher(codec, key)
}

func newAESCipher(codec fpeutils.Codec, key []byte) (*Cipher, error) {
	// Validate the radix before the key so an invalid radix is always reported as such.
	if err := checkRadix(codec.Radix()); err != nil {
		return nil, err
	}
	block, err := NewAESBlockCipher(key)
	if err != nil {
		return nil, err
	}
	return NewCipherWithBlock(codec, block)
}

// NewCipherWithBlock builds a Cipher over codec from an already keyed BlockCipher.
func NewCipherWithBlock(codec fpeutils.Codec, block BlockCipher) (*Cipher, error) {
	if err := checkRadix(codec.Radix()); err != nil {
		return nil, err
	}
	if block == nil {
		return nil, fmt.Errorf("%w: nil block cipher", ErrCipherFailure)
	}
	return &Cipher{
		codec: codec,
		radix: uint64(codec.Radix()),
		block: block,
	}, nil
}

func checkRadix(radix int) error {
	if radix < fpeutils.MinRadix || radix > fpeutils.MaxRadix {
		return fmt.Errorf("%w: got %d", ErrInvalidRadix, radix)
	}
	return nil
}

// Radix returns the radix of the Cipher's alphabet.
func (c *Cipher) Radix() int {
	return int(c.radix)
}

// Alphabet returns the symbols of the Cipher's alphabet in numeral order.
func (c *Cipher) Alphabet() string {
	return c.codec.Alphabet()
}

// Encrypt encrypts the string X under tweak and returns the ciphertext
// of the same length and alphabet.
func (c *Cipher) Encrypt(X string, tweak []byte) (string, error) {
	return c.crypt(X, tweak, true)
}

// Decrypt decrypts the string X under tweak and returns the plaintext
// of the same length and alphabet.
func (c *Cipher) Decrypt(X string, tweak []byte) (string, error) {
	return c.crypt(X, tweak, false)
}

func (c *Cipher) crypt(X string, tweak []byte, encrypt bool) (string, error) {
	numX, err := c.codec.Encode(X)
	if err != nil {
		return "", err
	}
	n := len(numX)
	if n == 0 {
		return "", nil
	}

	p, err := c.setup(n, len(tweak))
	if err != nil {
		return "", err
	}

	var out []uint16
	if encrypt {
		out, err = c.encryptNumerals(p, numX, tweak)
	} else {
		out, err = c.decryptNumerals(p, numX, tweak)
	}
	if err != nil {
		return "", err
	}
	return c.codec.Decode(out)
}

func (c *Cipher) encryptNumerals(p *params, X []uint16, tweak []byte) ([]uint16, error) {
	A, B := X[:p.u], X[p.u:]

	var numC big.Int
	for i := 0; i < numRounds; i++ {
		y, err := c.round(p, tweak, i, B)
		if err != nil {
			return nil, err
		}

		numA, err := fpeutils.Num(A, c.radix)
		if err != nil {
			return nil, err
		}

		// c = (NUM(A) + y) mod radix^|A|
		numC.Add(&numA, y)
		numC.Mod(&numC, c.modulus(p, len(A)))

		C, err := fpeutils.Str(&numC, make([]uint16, len(A)), c.radix)
		if err != nil {
			return nil, err
		}

		A = B
		B = C
	}
	return join(A, B), nil
}

func (c *Cipher) decryptNumerals(p *params, X []uint16, tweak []byte) ([]uint16, error) {
	A, B := X[:p.u], X[p.u:]

	var numA big.Int
	for i := numRounds - 1; i >= 0; i-- {
		C := B
		B = A

		y, err := c.round(p, tweak, i, B)
		if err != nil {
			return nil, err
		}

		numC, err := fpeutils.Num(C, c.radix)
		if err != nil {
			return nil, err
		}

		// a = (NUM(C) - y) mod radix^|C|; big.Int.Mod is never negative.
		numA.Sub(&numC, y)
		numA.Mod(&numA, c.modulus(p, len(C)))

		A, err = fpeutils.Str(&numA, make([]uint16, len(C)), c.radix)
		if err != nil {
			return nil, err
		}
	}
	return join(A, B), nil
}

func (c *Cipher) modulus(p *params, m int) *big.Int {
	if m == p.u {
		return p.modU
	}
	return p.modV
}

// join copies A and B into a new slice so the result never shares
// storage with the caller's input.
func join(A, B []uint16) []uint16 {
	out := make([]uint16, 0, len(A)+len(B))
	out = append(out, A...)
	return append(out, B...)
}

// Encrypt encrypts plaintext over the canonical alphabet of radix with key and tweak.
func Encrypt(plaintext string, radix int, key, tweak []byte) (string, error) {
	c, err := NewCipher(radix, key)
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext, tweak)
}

// Decrypt reverses Encrypt.
func Decrypt(ciphertext string, radix int, key, tweak []byte) (string, error) {
	c, err := NewCipher(radix, key)
	if err != nil {
		return "", err
	}
	return c.Decrypt(ciphertext, tweak)
}

// IsInputError reports whether err was caused by the caller's arguments
// rather than by the block cipher.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidKeyLength) ||
		errors.Is(err, ErrInvalidRadix) ||
		errors.Is(err, ErrInvalidSymbol) ||
		errors.Is(err, ErrInvalidLength)
}
