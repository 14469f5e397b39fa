// Command locallibrary serves the library catalog.
package main

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

	"github.com/spf13/cobra"

	"locallibrary/config"
)

var (
	configPath  string
	seedOnStart bool
)

var rootCmd = &cobra.Command{
	Use:          "locallibrary",
	Short:        "Local Library catalog web application",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg, log, seedOnStart)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file; environment variables override it")
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "load sample data before serving (handy with STORE_DRIVER=memory)")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (config.App, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.Usage())
		return config.App{}, nil, err
	}

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)
	return cfg, log, nil
}

func serve(ctx context.Context, cfg config.App, log *slog.Logger, withSeed bool) error {
	r, err := openRepos(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.close(cctx); err != nil {
			log.Error("store close failed", "err", err)
		}
	}()

	svcs := newServices(r, cfg)
	if withSeed {
		if err := seed(ctx, svcs, log); err != nil {
			return err
		}
	}

	e, err := newServer(cfg, log, svcs)
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", cfg.Port, "env", cfg.Env, "store", cfg.StoreDriver)
		errc <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(sctx)
}
