package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rickgao/auction-stats/internal/api"
	"github.com/rickgao/auction-stats/internal/auth"
	"github.com/rickgao/auction-stats/internal/catalog"
	"github.com/rickgao/auction-stats/internal/config"
	"github.com/rickgao/auction-stats/internal/database"
	"github.com/rickgao/auction-stats/internal/items"
	"github.com/rickgao/auction-stats/internal/metrics"
	"github.com/rickgao/auction-stats/internal/model"
	"github.com/rickgao/auction-stats/internal/pipeline"
	"github.com/rickgao/auction-stats/internal/version"
	"github.com/rickgao/auction-stats/internal/writer"
)

const defaultConfigPath = "configs/auctionstats.yaml"

const usage = `usage: auctionstats [-config path] <command> [flags]

commands:
  update                                    fetch, aggregate and store every configured auction house
  list-auction-houses [-format text|yaml]   list connected realms and their auction houses
  version                                   print build information
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("auctionstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", defaultConfigPath, "path to config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]

	if cmd == "version" {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	path := *configPath
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var err error
	switch cmd {
	case "update":
		err = runUpdate(ctx, cancel, path, stderr)
	case "list-auction-houses":
		err = runList(ctx, cancel, path, cmdArgs, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		fs.Usage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func runUpdate(ctx context.Context, cancel context.CancelFunc, path string, stderr io.Writer) error {
	cfg, err := config.LoadAndValidate(path)
	if err != nil {
		return err
	}
	if err := cfg.ValidateUpdate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	logger := newLogger(cfg.Logging, stderr)
	handleSignals(cancel, logger)

	logger.Info("starting update",
		"version", version.Version,
		"commit", version.Commit,
		"config", path,
		"region", cfg.BattleNet.Region,
		"backend", cfg.Storage.Backend,
		"pairs", len(cfg.AuctionHouses),
	)

	names, err := items.Load(cfg.Items.Path)
	if err != nil {
		return fmt.Errorf("%w: load item names: %w", model.ErrConfig, err)
	}
	logger.Debug("item names loaded", "count", names.Len())

	client, err := newAPIClient(ctx, cfg, logger)
	if err != nil {
		return err
	}

	runID := uuid.New()
	w, err := openWriter(ctx, cfg, runID, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	m := metrics.New(cfg.Metrics.Namespace)
	updater := pipeline.New(
		pipeline.Config{
			Concurrency:  cfg.Update.Concurrency,
			IsolatePairs: cfg.Update.IsolatePairs,
		},
		client, w, names,
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(m),
		pipeline.WithRunID(runID),
	)

	report, runErr := updater.Run(ctx, cfg.Pairs())
	if len(report.Results) > 0 {
		if err := report.WriteSummary(stderr); err != nil {
			logger.Warn("failed to write summary", "err", err)
		}
	}

	if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logger.Warn("failed to write metrics", "err", err)
	}

	if runErr != nil {
		return fmt.Errorf("couldn't update price data: %w", runErr)
	}
	return nil
}

func runList(ctx context.Context, cancel context.CancelFunc, path string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("list-auction-houses", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", catalog.FormatText, "output format: text or yaml")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", model.ErrConfig, err)
	}

	printer, err := catalog.NewPrinter(*format, stdout)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrConfig, err)
	}

	cfg, err := config.LoadAndValidate(path)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Logging, stderr)
	handleSignals(cancel, logger)

	client, err := newAPIClient(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if err := catalog.New(client, logger).Walk(ctx, printer.Print); err != nil {
		return fmt.Errorf("list auction houses: %w", err)
	}
	return printer.Flush()
}

// newAPIClient exchanges the client credentials for a token and returns a
// client that sends it with every request.
func newAPIClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*api.Client, error) {
	provider := auth.NewProvider(cfg.BattleNet.ClientID, cfg.BattleNet.ClientSecret,
		auth.WithTokenURL(cfg.BattleNet.TokenURL),
		auth.WithLogger(logger),
	)

	logger.Debug("state", "state", pipeline.StateUnauthenticated)
	token, err := provider.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't authenticate: %w", err)
	}
	logger.Debug("state", "state", pipeline.StateAuthenticated)

	return api.NewClient(cfg.BattleNet.Region, token,
		api.WithBaseURL(cfg.BattleNet.APIURL),
		api.WithLocale(cfg.BattleNet.Locale),
		api.WithTimeout(cfg.BattleNet.Timeout),
		api.WithLogger(logger),
	), nil
}

func openWriter(ctx context.Context, cfg *config.Config, runID uuid.UUID, logger *slog.Logger) (writer.MetricWriter, error) {
	switch cfg.Storage.Backend {
	case config.BackendTimescale:
		logger.Info("connecting to database",
			"host", cfg.Timescale.Host,
			"port", cfg.Timescale.Port,
			"database", cfg.Timescale.Name,
		)
		pool, err := database.Connect(ctx, cfg.Timescale)
		if err != nil {
			return nil, fmt.Errorf("%w: connect timescale: %w", model.ErrWrite, err)
		}
		w := writer.NewTimescaleWriter(pool, runID, logger)
		if err := w.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &pooledWriter{TimescaleWriter: w, close: pool.Close}, nil
	default:
		return writer.NewInfluxWriter(writer.InfluxConfig{
			Host:    cfg.InfluxDB.Host,
			Org:     cfg.InfluxDB.Org,
			Token:   cfg.InfluxDB.Token,
			Bucket:  cfg.InfluxDB.Bucket,
			Timeout: cfg.InfluxDB.Timeout,
		}, logger), nil
	}
}

// pooledWriter closes the connection pool along with the writer.
type pooledWriter struct {
	*writer.TimescaleWriter
	close func()
}

func (w *pooledWriter) Close() error {
	err := w.TimescaleWriter.Close()
	w.close()
	return err
}

func newLogger(cfg config.LoggingConfig, out io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func handleSignals(cancel context.CancelFunc, logger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()
}
