package context

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated user.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the authenticated user.
func WithIdentity(ctx context.Context, user *entity.PublicUser) context.Context {
	return context.WithValue(ctx, KeyIdentity, user)
}

// IdentityFrom returns the authenticated user stored by WithIdentity.
func IdentityFrom(ctx context.Context) (*entity.PublicUser, bool) {
	user, ok := ctx.Value(KeyIdentity).(*entity.PublicUser)

	return user, ok && user != nil
}

// SetIdentity attaches the authenticated user to the request context of c.
func SetIdentity(c echo.Context, user *entity.PublicUser) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), user)))
}

// GetIdentity returns the authenticated user attached to the request of c.
func GetIdentity(c echo.Context) (*entity.PublicUser, bool) {
	return IdentityFrom(c.Request().Context())
}
