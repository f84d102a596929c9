package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/edgefleet-io/edgefleet/internal/callback"
	"github.com/edgefleet-io/edgefleet/internal/database"
	"github.com/edgefleet-io/edgefleet/internal/handlers"
	"github.com/edgefleet-io/edgefleet/internal/metadata"
	"github.com/edgefleet-io/edgefleet/internal/routers"
)

// @title               EdgeFleet Metadata API
// @description         Device metadata catalog for the EdgeFleet platform.
// @version             1.0
// @BasePath            /
func main() {
	app := &cli.Command{
		Name: "apiserver",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("EDGEFLEET_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "listen",
				Value:   "0.0.0.0:48081",
				Usage:   "The address and port to listen for HTTP requests on",
				Sources: cli.EnvVars("EDGEFLEET_LISTEN"),
			},
			&cli.StringFlag{
				Name:    "db-host",
				Value:   "apiserver-db",
				Usage:   "Database host name",
				Sources: cli.EnvVars("EDGEFLEET_DB_HOST"),
			},
			&cli.StringFlag{
				Name:    "db-port",
				Value:   "5432",
				Usage:   "Database port",
				Sources: cli.EnvVars("EDGEFLEET_DB_PORT"),
			},
			&cli.StringFlag{
				Name:    "db-user",
				Value:   "apiserver",
				Usage:   "Database user",
				Sources: cli.EnvVars("EDGEFLEET_DB_USER"),
			},
			&cli.StringFlag{
				Name:    "db-password",
				Value:   "secret",
				Usage:   "Database password",
				Sources: cli.EnvVars("EDGEFLEET_DB_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "db-name",
				Value:   "apiserver",
				Usage:   "Database name",
				Sources: cli.EnvVars("EDGEFLEET_DB_NAME"),
			},
			&cli.StringFlag{
				Name:    "db-sslmode",
				Value:   "disable",
				Usage:   "Database ssl mode",
				Sources: cli.EnvVars("EDGEFLEET_DB_SSLMODE"),
			},
			&cli.IntFlag{
				Name:    "max-result-count",
				Value:   metadata.DefaultMaxResultCount,
				Usage:   "Maximum number of entities a bulk read may return",
				Sources: cli.EnvVars("EDGEFLEET_MAX_RESULT_COUNT"),
			},
			&cli.DurationFlag{
				Name:    "callback-timeout",
				Value:   callback.DefaultTimeout,
				Usage:   "Connection timeout for device service callbacks",
				Sources: cli.EnvVars("EDGEFLEET_CALLBACK_TIMEOUT"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			return run(ctx, command)
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, command *cli.Command) error {
	var logger *zap.Logger
	var err error
	if command.Bool("debug") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	sugar := logger.Sugar()

	db, err := database.NewDatabase(
		command.String("db-host"),
		command.String("db-user"),
		command.String("db-password"),
		command.String("db-name"),
		command.String("db-port"),
		command.String("db-sslmode"),
	)
	if err != nil {
		return err
	}

	dispatcher := callback.NewDispatcher(sugar, callback.Config{
		Timeout: command.Duration("callback-timeout"),
	})
	meta := metadata.NewService(sugar, db, dispatcher, metadata.Config{
		MaxResultCount: int(command.Int("max-result-count")),
	})
	api := handlers.NewAPI(sugar, meta)

	router := routers.NewAPIRouter(routers.APIRouterOptions{
		Logger: sugar,
		Api:    api,
	})

	server := &http.Server{
		Addr:    command.String("listen"),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		sugar.Infof("metadata api listening on %s", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stop:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Warnf("http server shutdown: %v", err)
	}
	// Let in-flight callbacks drain before exiting.
	dispatcher.Wait()
	return nil
}
