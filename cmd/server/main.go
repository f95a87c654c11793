package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/commercekit/authbridge/modules/authroutes"
	"github.com/commercekit/authbridge/pkg/account"
	"github.com/commercekit/authbridge/pkg/auth"
	"github.com/commercekit/authbridge/pkg/cognito"
	"github.com/commercekit/authbridge/pkg/config"
	"github.com/commercekit/authbridge/pkg/httpserver"
	"github.com/commercekit/authbridge/pkg/logger"
	"github.com/commercekit/authbridge/pkg/pg"
	redisconn "github.com/commercekit/authbridge/pkg/redis"
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	Provider      string `env:"AUTH_PROVIDER" envDefault:"cognito"`
	StrictSurface string `env:"AUTH_STRICT_SURFACE" envDefault:"store"`

	StoreSuccessRedirect string `env:"STORE_SUCCESS_REDIRECT" envDefault:"/"`
	StoreFailureRedirect string `env:"STORE_FAILURE_REDIRECT" envDefault:"/login"`
	AdminSuccessRedirect string `env:"ADMIN_SUCCESS_REDIRECT" envDefault:"/admin"`
	AdminFailureRedirect string `env:"ADMIN_FAILURE_REDIRECT" envDefault:"/admin/login"`

	Cognito cognito.Config
	PG      pg.Config
	Redis   redisconn.Config
	HTTP    httpserver.Config
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	var log *slog.Logger
	if cfg.Env == "production" {
		log = logger.New(logger.WithProduction("authbridge"))
	} else {
		log = logger.New(logger.WithDevelopment("authbridge"))
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	redisClient, err := redisconn.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	provider, err := cognito.New(ctx, cfg.Cognito)
	if err != nil {
		return err
	}

	strict := auth.StrictMode(cfg.StrictSurface)
	accounts := account.NewStore(pool)
	registry := auth.NewRegistry(
		auth.NewStrategy(cfg.Provider, auth.SurfaceStore,
			auth.NewReconciler(accounts, cfg.Provider, auth.SurfaceStore,
				auth.WithStrictMode(strict), auth.WithLogger(log))),
		auth.NewStrategy(cfg.Provider, auth.SurfaceAdmin,
			auth.NewReconciler(accounts, cfg.Provider, auth.SurfaceAdmin,
				auth.WithStrictMode(strict), auth.WithLogger(log))),
	)

	routes := authroutes.New(
		registry,
		provider,
		cognito.NewOAuth(cfg.Cognito),
		authroutes.NewSessionStore(redisClient, "authbridge"),
		authroutes.Options{
			Provider: cfg.Provider,
			Store: &authroutes.SurfaceConfig{
				SuccessRedirect: cfg.StoreSuccessRedirect,
				FailureRedirect: cfg.StoreFailureRedirect,
			},
			Admin: &authroutes.SurfaceConfig{
				SuccessRedirect: cfg.AdminSuccessRedirect,
				FailureRedirect: cfg.AdminFailureRedirect,
			},
		},
		authroutes.WithRouterLogger(log),
	)

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redisconn.Healthcheck(redisClient),
	))
	r.Mount("/", routes)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
