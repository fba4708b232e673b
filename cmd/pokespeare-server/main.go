package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/pokespeare/internal/bootstrap"
	"github.com/at-ishikawa/pokespeare/internal/config"
	"github.com/at-ishikawa/pokespeare/internal/logging"
	"github.com/at-ishikawa/pokespeare/internal/pokemon"
	"github.com/at-ishikawa/pokespeare/internal/server"
	"github.com/at-ishikawa/pokespeare/internal/species/pokeapi"
	"github.com/at-ishikawa/pokespeare/internal/translation/funtranslations"
)

var (
	configFile string
	logLevel   logging.LevelFlag
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pokespeare-server",
		Short:         "Shakespearean Pokémon descriptions over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().Var(&logLevel, "log-level", "log level (debug, info, warn, error); overrides the config file")
	return rootCmd
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	logger, err := logging.Setup(os.Stdout, logLevel, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logging.Setup() > %w", err)
	}

	listener, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("net.Listen(%s) > %w", cfg.Server.Addr(), err)
	}
	return serve(ctx, cfg, listener, logger)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// serve runs the HTTP server on listener until ctx is canceled or the process is interrupted.
func serve(ctx context.Context, cfg *config.Config, listener net.Listener, logger *slog.Logger) error {
	app := bootstrap.New(cfg.Server.ShutdownTimeout)

	translationClient := funtranslations.NewClient(cfg.FunTranslations.BaseURL, cfg.HTTPClient.Timeout)
	app.AddShutdownHook(func(context.Context) error {
		return translationClient.Close()
	})
	speciesClient := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.HTTPClient.Timeout)
	describer := pokemon.NewDescriber(speciesClient, translationClient)

	srv := newHTTPServer(cfg, server.NewRouter(describer, logger))
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("Starting server",
			"addr", listener.Addr().String(),
			"pokeapi", speciesClient.BaseURL(),
			"funtranslations", translationClient.BaseURL())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}
