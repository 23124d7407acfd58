package ffx

import (
	"errors"

	"github.com/ffx-go/ffxradix/fpeutils"
)

var (
	// ErrInvalidKeyLength is returned for keys that are not 16, 24 or 32 bytes.
	ErrInvalidKeyLength = errors.New("key length must be 128, 192, or 256 bits")
	// ErrInvalidRadix is returned for radices outside [2, 62].
	ErrInvalidRadix = fpeutils.ErrInvalidRadix
	// ErrInvalidSymbol is returned when the input holds a character outside the alphabet.
	ErrInvalidSymbol = fpeutils.ErrInvalidSymbol
	// ErrInvalidLength is returned when the message or tweak length does not fit in 32 bits.
	ErrInvalidLength = errors.New("message or tweak too long")
	// ErrCipherFailure is returned when the underlying block cipher call fails.
	ErrCipherFailure = errors.New("block cipher failure")
)
