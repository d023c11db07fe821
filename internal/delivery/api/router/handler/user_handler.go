package handler

import (
	"net/http"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type updateAccountRequest struct {
	FullName string `json:"fullName" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
}

type imageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// UserHandler serves account, channel and watch-history routes for the signed-in user.
type UserHandler struct {
	uc usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetCurrentUser returns the signed-in user as stored.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	current, err := h.uc.GetCurrentUser(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, current, "Current user fetched successfully")
}

// UpdateAccountDetails changes the display name and email.
func (h *UserHandler) UpdateAccountDetails(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateAccountDetails(c.Request().Context(), &usecase.UpdateAccountInput{
		UserID:   user.ID,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Account details updated successfully")
}

// UpdateAvatar stores a new avatar URL.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req imageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateAvatar(c.Request().Context(), user.ID, req.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Avatar updated successfully")
}

// UpdateCoverImage stores a new cover image URL.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req imageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateCoverImage(c.Request().Context(), user.ID, req.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Cover image updated successfully")
}

// GetChannelProfile returns the channel page of :username for the signed-in viewer.
func (h *UserHandler) GetChannelProfile(c echo.Context) error {
	viewer, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetChannelProfile(c.Request().Context(), c.Param("username"), viewer.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "User channel fetched successfully")
}

// ToggleSubscription subscribes to or unsubscribes from the channel of :username.
func (h *UserHandler) ToggleSubscription(c echo.Context) error {
	viewer, err := currentUser(c)
	if err != nil {
		return err
	}

	out, err := h.uc.ToggleSubscription(c.Request().Context(), viewer.ID, c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Unsubscribed successfully"
	if out.Subscribed {
		message = "Subscribed successfully"
	}

	return response.Success(c, http.StatusOK, out, message)
}

// GetWatchHistory returns the signed-in user's watched videos in history order.
func (h *UserHandler) GetWatchHistory(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	history, err := h.uc.GetWatchHistory(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Watch history fetched successfully")
}

// RecordWatch appends :videoId to the signed-in user's watch history.
func (h *UserHandler) RecordWatch(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.uc.RecordWatch(c.Request().Context(), user.ID, videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"videoId": videoID}, "Watch recorded")
}
