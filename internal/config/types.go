// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultEnumName matches the enum class the Kotlin viewer references.
const DefaultEnumName EnumName = "Patterns"

// ErrInvalidEnumName is returned when an EnumName is not a valid identifier.
var ErrInvalidEnumName = errors.New("invalid enum name")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type (
	// EnumName is the Kotlin enum class name written in the listing header.
	EnumName string

	// InvalidEnumNameError is returned when an EnumName value is not a valid
	// Kotlin identifier. It wraps ErrInvalidEnumName for errors.Is().
	InvalidEnumNameError struct {
		Value EnumName
	}

	// UIConfig controls diagnostics.
	UIConfig struct {
		// Verbose enables debug logging on stderr.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose"`
	}

	// ListingConfig controls the generated Kotlin source.
	ListingConfig struct {
		// EnumName is the enum class name.
		EnumName EnumName `json:"enum_name" mapstructure:"enum_name" toml:"enum_name"`
	}

	// InputConfig controls how file arguments are interpreted.
	InputConfig struct {
		// ExpandGlobs expands arguments containing glob metacharacters.
		ExpandGlobs bool `json:"expand_globs" mapstructure:"expand_globs" toml:"expand_globs"`
	}

	// Config is the full golly2kt configuration.
	Config struct {
		UI      UIConfig      `json:"ui" mapstructure:"ui" toml:"ui"`
		Listing ListingConfig `json:"listing" mapstructure:"listing" toml:"listing"`
		Input   InputConfig   `json:"input" mapstructure:"input" toml:"input"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose: false,
		},
		Listing: ListingConfig{
			EnumName: DefaultEnumName,
		},
		Input: InputConfig{
			ExpandGlobs: true,
		},
	}
}

// Error implements the error interface.
func (e *InvalidEnumNameError) Error() string {
	return fmt.Sprintf("invalid enum name %q (must be a Kotlin identifier)", e.Value)
}

// Unwrap returns ErrInvalidEnumName for errors.Is() compatibility.
func (e *InvalidEnumNameError) Unwrap() error {
	return ErrInvalidEnumName
}

// Validate returns nil if the name is a valid identifier.
func (n EnumName) Validate() error {
	if !identifierPattern.MatchString(string(n)) {
		return &InvalidEnumNameError{Value: n}
	}
	return nil
}

// String returns the string representation of the EnumName.
func (n EnumName) String() string { return string(n) }

// Validate checks every field that CUE may not have seen (defaults and
// programmatic construction).
func (c *Config) Validate() error {
	return c.Listing.EnumName.Validate()
}
