package impl

import (
	"io"
	"log/slog"
	"testing"

	"vidtube/config"
	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(revokeOnPasswordChange bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:                     4,
			RevokeSessionsOnPasswordChange: revokeOnPasswordChange,
		},
	}
}

func newTestUser(username string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@x.com",
		FullName:     "Test " + username,
		PasswordHash: "hashed:" + username,
	}
}
