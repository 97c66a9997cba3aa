package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-estate-api/internal/config"
)

// NewPasswordHasher picks the [PasswordHasher] named by cfg.PasswordHasher.
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	switch cfg.PasswordHasher {
	case config.PasswordHasherBcrypt, "":
		return NewBcryptHasher(cfg.BcryptCost), nil
	case config.PasswordHasherArgon2:
		return NewArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, cfg.PasswordHasher)
	}
}
