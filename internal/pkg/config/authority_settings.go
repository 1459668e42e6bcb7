package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AuthoritySettings holds configuration settings for the timestamp authority.
// Mode "authenticated" binds tokens to Secret with HMAC-SHA256; mode
// "encoding-only" reproduces the legacy decode-only verification and must be
// selected explicitly.
type AuthoritySettings struct {
	Mode   string `mapstructure:"mode" validate:"required,oneof=authenticated encoding-only"`
	Secret string `mapstructure:"secret"`
}

// Validate checks that all fields in AuthoritySettings are valid
func (s *AuthoritySettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthoritySettings: %w", err)
	}

	if s.Mode == "authenticated" && len(s.Secret) < 16 {
		return fmt.Errorf("authenticated mode requires a secret of at least 16 bytes")
	}

	return nil
}
