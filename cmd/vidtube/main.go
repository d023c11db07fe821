package main

import (
	"context"
	"log/slog"
	"os"

	"vidtube/config"
	"vidtube/internal/delivery"
	"vidtube/internal/delivery/api"
	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router/handler"
	"vidtube/internal/domain/service"
	"vidtube/internal/infra/auth"
	logs "vidtube/internal/infra/log"
	"vidtube/internal/infra/metrics"
	"vidtube/internal/infra/persistence/mongo"
	"vidtube/internal/infra/persistence/postgres"
	"vidtube/internal/infra/ratelimit"
	"vidtube/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		injectInfra(),
		injectRepo(cfg),
		injectService(cfg),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectRepo selects the repository implementations for the configured storage driver.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		return fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewTweetRepository,
			postgres.NewChannelRepository,
		)
	}

	return fx.Provide(
		mongo.New,
		mongo.NewUserRepository,
		mongo.NewTweetRepository,
		mongo.NewChannelRepository,
	)
}

func injectService(cfg *config.Config) fx.Option {
	opts := []fx.Option{
		fx.Provide(
			auth.NewPasswordHasher,
			auth.NewJWTService,
		),
	}

	if cfg.Auth.LoginThrottle.Enabled {
		opts = append(opts, fx.Provide(
			ratelimit.NewRedisClient,
			ratelimit.NewLoginLimiter,
		))
	} else {
		opts = append(opts, fx.Provide(ratelimit.NewNoopLimiter))
	}

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		opts = append(opts, fx.Provide(
			metrics.NewRegistry,
			func(registry *metrics.Registry) service.AuthMetrics {
				return registry.AuthMetrics()
			},
		))
	} else {
		opts = append(opts, fx.Provide(metrics.NewNoopAuthMetrics))
	}

	return fx.Options(opts...)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewTweetService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewTweetHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
