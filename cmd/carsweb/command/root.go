// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the carsweb
// project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database initialization actions.
// The init-dev and init-prod actions create the cars table (if it is
// missing) and the init-dev also fills an empty table with a few
// sample cars.
//
//	./carsweb [-c /path/of/config.yaml]           # start web server
//	./carsweb db init-dev [-c /path/of/config.yaml]
//	./carsweb db init-prod [-c /path/of/config.yaml]
//	./carsweb version
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momeni/carsweb/pkg/adapter/config"
	"github.com/momeni/carsweb/pkg/adapter/restful/gin/routes"
	"github.com/momeni/carsweb/pkg/core/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// readHeaderTimeout bounds reading of the request headers, so idle
// clients cannot hold the connections forever.
const readHeaderTimeout = 10 * time.Second

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "carsweb",
	Short: "A cars inventory REST API",
	Long: `A cars inventory REST API which lists, creates, updates, and
deletes cars in a PostgreSQL or SQLite database.
Cars are validated by the cars use case before being stored and each
rejected car is reported with a plain text message.
The web server stops gracefully on SIGINT or SIGTERM.`,
	RunE: startWebServer,
	Args: cobra.NoArgs,
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, l, p, err := setup(ctx)
	if err != nil {
		return err
	}
	defer p.Close()
	if err = initDB(ctx, c, p, c.Database.Initialize); err != nil {
		return err
	}
	e := c.Gin.NewEngine(l)
	if err = routes.Register(e, p, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	srv := &http.Server{
		Addr:              c.Gin.Address,
		Handler:           e,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "listening", slog.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving HTTP: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := time.Duration(*c.Gin.ShutdownTimeout)
		sctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		log.Info(sctx, "shutting down", slog.Duration("timeout", timeout))
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// setup loads the configuration file, installs the default logger,
// and creates the database connection pool. The caller must close
// the returned pool.
func setup(ctx context.Context) (
	*config.Config, *slog.Logger, config.Pool, error,
) {
	c, err := config.Load(ctx, cfgPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	l, err := c.Log.Setup(os.Stderr)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setting up logger: %w", err)
	}
	log.Info(
		ctx, "loaded configs",
		slog.String("path", cfgPath),
		slog.String("driver", c.Database.Driver),
		slog.Any("version", c.Version),
	)
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating DB pool: %w", err)
	}
	return c, l, p, nil
}

// initDB runs the mode initialization action of the database
// initialization use case. The none mode performs no action.
func initDB(
	ctx context.Context, c *config.Config, p config.Pool, mode string,
) error {
	uc := c.NewInitDBUseCase(p)
	var err error
	switch mode {
	case config.InitDev:
		err = uc.InitDev(ctx)
	case config.InitProd:
		err = uc.InitProd(ctx)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("initializing DB with %s data: %w", mode, err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The context which
// is passed to the commands is cancelled by SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
