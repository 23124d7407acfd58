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

package ffx

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/ffx-go/ffxradix/fpeutils"
)

// params holds everything about a call that depends only on the message
// length, tweak length and radix. It is shared by all rounds of one call.
type params struct {
	n, u, v int

	// b is the byte length of NUM(B), d+4 the number of PRF output bytes kept.
	b, d int

	// numPad zero bytes bring the tweak and round input to a multiple of 16.
	numPad int

	// iv is the CBC-MAC of the static header P.
	iv []byte

	modU, modV *big.Int
}

// header builds the 16 byte static block P.
func header(radix uint64, n, t int) []byte {
	P := make([]byte, blockSize)
	P[0] = 0x01 // version
	P[1] = 0x02 // method: alternating Feistel
	P[2] = 0x01 // addition: blockwise

	// radix must fill 3 bytes, so pad 1 zero byte
	P[3] = 0x00
	binary.BigEndian.PutUint16(P[4:6], uint16(radix))

	P[6] = numRounds
	P[7] = byte(n / 2) // overflow automatically does the modulus

	binary.BigEndian.PutUint32(P[8:12], uint32(n))
	binary.BigEndian.PutUint32(P[12:16], uint32(t))
	return P
}

// byteLen returns ceil(ceil(v*log2(radix))/8) without floating point:
// ceil(v*log2(radix)) is the bit length of radix^v-1.
func byteLen(radix uint64, v int) int {
	top := fpeutils.Pow(radix, v)
	top.Sub(top, big.NewInt(1))
	return (top.BitLen() + 7) / 8
}

func (c *Cipher) setup(n, t int) (*params, error) {
	if uint64(n) > math.MaxUint32 || uint64(t) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: message %d, tweak %d", ErrInvalidLength, n, t)
	}

	p := &params{n: n, u: n / 2}
	p.v = n - p.u
	p.b = byteLen(c.radix, p.v)
	p.d = 4 * ((p.b + 3) / 4)

	p.numPad = (-t - p.b - 1) % 16
	if p.numPad < 0 {
		p.numPad += 16
	}

	// P is the same for every round, so its encryption becomes the IV
	// under which each round's Q is CBC encrypted.
	p.iv = make([]byte, blockSize)
	if err := c.block.EncryptECB(p.iv, header(c.radix, n, t)); err != nil {
		return nil, err
	}

	p.modU = fpeutils.Pow(c.radix, p.u)
	p.modV = fpeutils.Pow(c.radix, p.v)
	return p, nil
}

// round is the FFX round function F_K(n, T, i, B). It returns the
// numeral value y mod radix^m, where m is the length of the half that
// round i rewrites.
func (c *Cipher) round(p *params, tweak []byte, i int, B []uint16) (*big.Int, error) {
	t := len(tweak)

	// Q = T || 0^numPad || [i]1 || [NUM(B)]b
	lenQ := t + p.numPad + 1 + p.b
	Q := make([]byte, lenQ)
	copy(Q, tweak)
	Q[t+p.numPad] = byte(i)

	numB, err := fpeutils.Num(B, c.radix)
	if err != nil {
		return nil, err
	}
	copy(Q[lenQ-p.b:], fpeutils.IntToBytes(&numB, p.b))

	// CBC-MAC(P || Q) is the last block of CBC(Q) under IV = E(P).
	out := make([]byte, lenQ)
	if err := c.block.EncryptCBC(out, p.iv, Q); err != nil {
		return nil, err
	}
	R := out[lenQ-blockSize:]

	// Y = first d+4 bytes of R || E(R xor [1]16) || E(R xor [2]16) ...
	need := p.d + 4
	Y := make([]byte, 0, blockSize*((need+blockSize-1)/blockSize))
	Y = append(Y, R...)
	var J, E [blockSize]byte
	for j := 1; j*blockSize < need; j++ {
		copy(J[:], fpeutils.IntToBytes(big.NewInt(int64(j)), blockSize))
		subtle.XORBytes(J[:], J[:], R)
		if err := c.block.EncryptECB(E[:], J[:]); err != nil {
			return nil, err
		}
		Y = append(Y, E[:]...)
	}

	y := fpeutils.BytesToInt(Y[:need])

	mod := p.modU
	if i%2 == 1 {
		mod = p.modV
	}
	return y.Mod(y, mod), nil
}
