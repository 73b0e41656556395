package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wichananm65/user-registry/internal/infrastructure/config"
	"github.com/wichananm65/user-registry/internal/infrastructure/database/inmemory"
	httpHandler "github.com/wichananm65/user-registry/internal/interface/http/handler"
	"github.com/wichananm65/user-registry/internal/interface/http/router"
	"github.com/wichananm65/user-registry/internal/interface/presenter"
	"github.com/wichananm65/user-registry/internal/usecase"
	"github.com/wichananm65/user-registry/pkg/logger"
	"github.com/wichananm65/user-registry/pkg/shutdown"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	envFile := flag.String("env-file", ".env", "optional dotenv file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitGlobalLogger(cfg.Logging.Environment(), cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Log(ctx)

	userRepo := inmemory.NewUserRepository()
	userPresenter := presenter.NewUserPresenter()
	userUsecase := usecase.NewUserService(userRepo, usecase.WithMinimumAge(cfg.Users.MinimumAge))
	userHandler := httpHandler.NewUserHandler(userUsecase, userPresenter)

	app := router.New(router.Options{
		Logger:       log,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}, userHandler, userUsecase)

	go func() {
		log.Info(ctx, "starting server", zap.String("addr", cfg.HTTP.Addr()))
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal(ctx, "server stopped", zap.Error(err))
		}
	}()

	err = shutdown.Wait(cfg.Shutdown.Timeout,
		app.ShutdownWithContext,
		userRepo.Close,
		func(context.Context) error {
			// stderr sync fails on some platforms; nothing useful to do about it
			_ = log.Sync()
			return nil
		},
	)
	if err != nil {
		log.Error(ctx, "shutdown finished with errors", zap.Error(err))
		os.Exit(1)
	}
	log.Info(ctx, "server stopped")
}
