package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/sortnet"
)

// ErrConfig indicates an unreadable or invalid config file.
var ErrConfig = errors.New("cli: invalid config")

// Config holds command defaults read from TOML.
//
//	scheme         = "batcher"
//	format         = "text"
//	max_exhaustive = 16
//	workers        = 4
type Config struct {
	Scheme        string `toml:"scheme" validate:"required,scheme"`
	Format        string `toml:"format" validate:"required,oneof=text dot json svg"`
	MaxExhaustive int    `toml:"max_exhaustive" validate:"gte=1,lte=24"`
	Workers       int    `toml:"workers" validate:"gte=1,lte=1024"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Scheme:        sortnet.BoseNelson.String(),
		Format:        formatText,
		MaxExhaustive: 16,
		Workers:       4,
	}
}

// configValidate checks Config tags; "scheme" accepts any ParseScheme name.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	if err := configValidate.RegisterValidation("scheme", validateScheme); err != nil {
		panic(err)
	}
}

func validateScheme(fl validator.FieldLevel) bool {
	_, err := sortnet.ParseScheme(fl.Field().String())
	return err == nil
}

// LoadConfig reads path over DefaultConfig and validates the result.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	return cfg, nil
}

// Validate checks field ranges and names. max_exhaustive is bounded by
// network.MaxVerifySize.
func (c Config) Validate() error {
	return configValidate.Struct(c)
}
