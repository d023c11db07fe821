// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"vidtube/config"
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router/handler"
	"vidtube/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	TweetHandler   *handler.TweetHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Registry `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	tweetHandler   *handler.TweetHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		tweetHandler:   params.TweetHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/healthcheck", handler.HealthCheck)

	requireAuth := r.authMiddleware.Authenticate

	users := apiV1.Group("/users")
	{
		users.POST("/register", r.authHandler.Register)
		users.POST("/login", r.authHandler.Login)
		users.POST("/refresh-token", r.authHandler.RefreshToken)
		users.PATCH("/refresh-token", r.authHandler.RefreshToken)

		users.POST("/logout", r.authHandler.Logout, requireAuth)
		users.PATCH("/change-password", r.authHandler.ChangePassword, requireAuth)

		users.GET("/current-user", r.userHandler.GetCurrentUser, requireAuth)
		users.PATCH("/update-details", r.userHandler.UpdateAccountDetails, requireAuth)
		users.PATCH("/avatar", r.userHandler.UpdateAvatar, requireAuth)
		users.PATCH("/cover-image", r.userHandler.UpdateCoverImage, requireAuth)
		users.GET("/channel/:username", r.userHandler.GetChannelProfile, requireAuth)
		users.POST("/channel/:username/subscription", r.userHandler.ToggleSubscription, requireAuth)
		users.GET("/watch-history", r.userHandler.GetWatchHistory, requireAuth)
	}

	videos := apiV1.Group("/videos", requireAuth)
	{
		videos.POST("/:videoId/watch", r.userHandler.RecordWatch)
	}

	tweets := apiV1.Group("/tweet", requireAuth)
	{
		tweets.POST("/create", r.tweetHandler.CreateTweet)
		tweets.PATCH("/update/:tweetId", r.tweetHandler.UpdateTweet)
		tweets.PATCH("/delete/:tweetId", r.tweetHandler.DeleteTweet)
		tweets.DELETE("/delete/:tweetId", r.tweetHandler.DeleteTweet)
		tweets.GET("/my-tweet", r.tweetHandler.ListMyTweets)
	}
}
