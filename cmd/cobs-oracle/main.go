// cobs-oracle compares the block and bytewise COBS codecs on generated and
// corpus inputs, and exits with status 1 if they ever disagree.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dcreager/cobs-go/internal/driver"
	"github.com/dcreager/cobs-go/internal/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (defaults are used when empty)")
	trials := flag.Int("trials", 0, "number of generated trials (overrides the config file)")
	seed := flag.Int64("seed", 0, "base seed for generated trials (overrides the config file)")
	flag.Parse()

	cfg := driver.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = driver.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "cobs-oracle: %v\n", err)
			os.Exit(2)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trials":
			cfg.Trials = *trials
		case "seed":
			cfg.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "cobs-oracle: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New("cobs-oracle", cfg.LogLevel, os.Stderr)
	mismatches, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Oracle run failed")
		stop()
		os.Exit(2)
	}
	if mismatches > 0 {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg driver.Config, logger zerolog.Logger) (int, error) {
	if cfg.MetricsListenAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: cfg.MetricsListenAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Str("addr", cfg.MetricsListenAddr).Msg("Metrics server failed")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	d, err := driver.New(cfg, logger)
	if err != nil {
		return 0, err
	}
	summary, err := d.Run(ctx)
	return summary.Mismatches, err
}
