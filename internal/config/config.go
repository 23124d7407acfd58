// Package config holds the command-line configuration of the ffx tool.
package config

import (
	"encoding/hex"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ffx-go/ffxradix/ffx"
	"github.com/ffx-go/ffxradix/fpeutils"
)

// Digit orderings for radices above 36.
const (
	OrderingCanonical = "canonical"
	OrderingGMP       = "gmp"
)

// Config is populated from flags, FFX_* environment variables and an
// optional config file.
type Config struct {
	// Common flags
	Key      string `mapstructure:"key"       validate:"required,aeskey"` // hex encoded, 16/24/32 bytes
	Tweak    string `mapstructure:"tweak"     validate:"excluded_with=TweakHex"`
	TweakHex string `mapstructure:"tweak-hex" validate:"omitempty,hexadecimal"`
	Radix    int    `mapstructure:"radix"     validate:"min=2,max=62"`
	Alphabet string `mapstructure:"alphabet"`
	Ordering string `mapstructure:"ordering"  validate:"oneof=canonical gmp"`
	Verbose  bool   `mapstructure:"verbose"`

	// Command-specific
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Inputs []string `mapstructure:"-"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("aeskey", validateAESKey); err != nil {
		return fmt.Errorf("registering aeskey validation: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// validateAESKey accepts hex strings that decode to an AES-128/192/256 key.
func validateAESKey(fl validator.FieldLevel) bool {
	key, err := hex.DecodeString(fl.Field().String())
	if err != nil {
		return false
	}

	switch len(key) {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}

// KeyBytes returns the decoded key.
func (c Config) KeyBytes() ([]byte, error) {
	key, err := hex.DecodeString(c.Key)
	if err != nil {
		return nil, fmt.Errorf("invalid key format: %w", err)
	}

	return key, nil
}

// TweakBytes returns the tweak, taken raw from Tweak or decoded from TweakHex.
func (c Config) TweakBytes() ([]byte, error) {
	if c.TweakHex == "" {
		return []byte(c.Tweak), nil
	}

	tweak, err := hex.DecodeString(c.TweakHex)
	if err != nil {
		return nil, fmt.Errorf("invalid tweak format: %w", err)
	}

	return tweak, nil
}

// Cipher builds the FFX cipher described by the configuration. An explicit
// alphabet takes precedence over radix and ordering.
func (c Config) Cipher() (*ffx.Cipher, error) {
	key, err := c.KeyBytes()
	if err != nil {
		return nil, err
	}

	if c.Alphabet != "" {
		return ffx.NewCipherWithAlphabet(c.Alphabet, key)
	}

	if c.Ordering != OrderingGMP {
		return ffx.NewCipher(c.Radix, key)
	}

	codec, err := fpeutils.GMPCodec(c.Radix)
	if err != nil {
		return nil, err
	}

	block, err := ffx.NewAESBlockCipher(key)
	if err != nil {
		return nil, err
	}

	return ffx.NewCipherWithBlock(codec, block)
}
