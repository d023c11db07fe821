package auth

import (
	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
)

// NewPasswordHasher selects the password hashing algorithm from configuration.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg.Auth == nil {
		return NewBcryptHasher(), nil
	}

	switch cfg.Auth.Hasher {
	case "", config.HasherBcrypt:
		return NewBcryptHasherWithCost(cfg.Auth.BcryptCost), nil
	case config.HasherArgon2id:
		return NewArgon2Hasher(DefaultArgon2Params), nil
	default:
		return nil, errors.Errorf("unknown password hasher %q", cfg.Auth.Hasher)
	}
}

// validatePasswordLength is the policy shared by every hasher.
func validatePasswordLength(password string) error {
	if password == "" {
		return errors.WithStack(service.ErrPasswordEmpty)
	}
	if len(password) > service.MaxPasswordBytes {
		return errors.WithStack(service.ErrPasswordTooLong)
	}

	return nil
}
