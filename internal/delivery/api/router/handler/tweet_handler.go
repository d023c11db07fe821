package handler

import (
	"net/http"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type tweetRequest struct {
	Content string `json:"content" validate:"required"`
}

// TweetHandler serves the tweet routes of the signed-in user.
type TweetHandler struct {
	uc usecase.TweetUsecase
}

// NewTweetHandler is the constructor for TweetHandler, injected by Fx.
func NewTweetHandler(uc usecase.TweetUsecase) *TweetHandler {
	return &TweetHandler{uc: uc}
}

func (h *TweetHandler) CreateTweet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req tweetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tweet, err := h.uc.CreateTweet(c.Request().Context(), user.ID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tweet, "Tweet created successfully")
}

func (h *TweetHandler) UpdateTweet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tweetID, err := uuidParam(c, "tweetId")
	if err != nil {
		return err
	}

	var req tweetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tweet, err := h.uc.UpdateTweet(c.Request().Context(), user.ID, tweetID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tweetID, err := uuidParam(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTweet(c.Request().Context(), user.ID, tweetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"tweetId": tweetID}, "Tweet deleted successfully")
}

func (h *TweetHandler) ListMyTweets(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tweets, err := h.uc.ListMyTweets(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tweets, "Tweets fetched successfully")
}
