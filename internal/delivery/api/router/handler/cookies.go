package handler

import (
	"net/http"
	"time"

	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// RefreshTokenCookie names the cookie carrying the refresh token.
const RefreshTokenCookie = "refreshToken"

// sessionCookies writes the token pair as http-only cookies.
type sessionCookies struct {
	secure bool
}

func (s sessionCookies) set(c echo.Context, tokens *entity.TokenPair) {
	c.SetCookie(s.cookie(apimiddleware.AccessTokenCookie, tokens.AccessToken, tokens.AccessExpiresAt))
	c.SetCookie(s.cookie(RefreshTokenCookie, tokens.RefreshToken, tokens.RefreshExpiresAt))
}

func (s sessionCookies) clear(c echo.Context) {
	for _, name := range []string{apimiddleware.AccessTokenCookie, RefreshTokenCookie} {
		cookie := s.cookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func (s sessionCookies) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
