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
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const blockSize = aes.BlockSize

// BlockCipher supplies the raw, unpadded block operations the round
// function is built on. The key is bound when the BlockCipher is created.
// Implementations must be safe for concurrent use.
type BlockCipher interface {
	// EncryptECB encrypts one or more concatenated blocks of src into dst.
	EncryptECB(dst, src []byte) error
	// EncryptCBC encrypts src into dst in CBC mode starting from iv.
	EncryptCBC(dst, iv, src []byte) error
}

type aesBlockCipher struct {
	block cipher.Block
}

// NewAESBlockCipher returns the AES BlockCipher for key. The key length
// selects AES-128, AES-192 or AES-256.
func NewAESBlockCipher(key []byte) (BlockCipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}

	// aes.NewCipher copies the key schedule, so later changes to key have no effect.
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: creating AES block: %v", ErrCipherFailure, err)
	}
	return &aesBlockCipher{block: block}, nil
}

// These are checked here manually because CryptBlocks panics rather than returning an error.
func checkBlocks(dst, src []byte) error {
	if len(src)%blockSize != 0 {
		return fmt.Errorf("%w: input length %d is not a multiple of %d", ErrCipherFailure, len(src), blockSize)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: output buffer too small", ErrCipherFailure)
	}
	return nil
}

func (c *aesBlockCipher) EncryptECB(dst, src []byte) error {
	if err := checkBlocks(dst, src); err != nil {
		return err
	}
	for i := 0; i < len(src); i += blockSize {
		c.block.Encrypt(dst[i:i+blockSize], src[i:i+blockSize])
	}
	return nil
}

func (c *aesBlockCipher) EncryptCBC(dst, iv, src []byte) error {
	if err := checkBlocks(dst, src); err != nil {
		return err
	}
	if len(iv) != blockSize {
		return fmt.Errorf("%w: IV must be %d bytes", ErrCipherFailure, blockSize)
	}
	// A fresh BlockMode per call; CBC state is never shared between callers.
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(dst[:len(src)], src)
	return nil
}
