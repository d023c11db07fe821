package handler

import (
	"net/http"

	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Username   string `json:"username" validate:"required,max=64"`
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"fullName" validate:"required,max=128"`
	Password   string `json:"password" validate:"required,maxbytes=72"`
	Avatar     string `json:"avatar" validate:"omitempty,url"`
	CoverImage string `json:"coverImage" validate:"omitempty,url"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,maxbytes=72"`
}

// sessionResponse is the body of a successful login or refresh. The tokens are
// also set as cookies for browser clients.
type sessionResponse struct {
	User *entity.PublicUser `json:"user,omitempty"`
	*entity.TokenPair
}

// AuthHandler serves the session routes: register, login, refresh, logout and change password.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	cookies sessionCookies
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		cookies: sessionCookies{secure: cfg.IsProduction()},
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		Avatar:     req.Avatar,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, output.Tokens)

	return response.Success(c, http.StatusOK, sessionResponse{User: output.User, TokenPair: output.Tokens}, "User logged in successfully")
}

// RefreshToken exchanges the refresh token from the cookie or the request body for a new pair.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil && cookie.Value != "" {
		req.RefreshToken = cookie.Value
	} else if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}

	tokens, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.set(c, tokens)

	return response.Success(c, http.StatusOK, sessionResponse{TokenPair: tokens}, "Access token refreshed")
}

// Logout revokes the caller's refresh token and clears both cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.clear(c)

	return response.Success(c, http.StatusOK, map[string]any{}, "User logged out")
}

// ChangePassword handles the password change of the signed-in user.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err = h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{}, "Password changed successfully")
}
