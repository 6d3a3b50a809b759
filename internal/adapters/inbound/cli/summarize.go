package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/openkraft/ciusage/internal/adapters/outbound/asadm"
	"github.com/openkraft/ciusage/internal/adapters/outbound/cache"
	"github.com/openkraft/ciusage/internal/adapters/outbound/config"
	"github.com/openkraft/ciusage/internal/adapters/outbound/history"
	"github.com/openkraft/ciusage/internal/adapters/outbound/parser"
	"github.com/openkraft/ciusage/internal/adapters/outbound/scanner"
	"github.com/openkraft/ciusage/internal/adapters/outbound/tui"
	"github.com/openkraft/ciusage/internal/adapters/outbound/xlsx"
	"github.com/openkraft/ciusage/internal/application"
	"github.com/openkraft/ciusage/internal/domain"
)

type runOptions struct {
	configPath string
	tool       string
	timeout    time.Duration
	output     string
	allFiles   bool
	useCache   bool
	clearCache bool
	record     bool
	jsonOutput bool
	verbose    bool
}

func (o *runOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "Config file (default: <directory>/.ciusage.yaml)")
	f.StringVar(&o.tool, "tool", domain.DefaultTool, "Administration tool to run")
	f.DurationVar(&o.timeout, "timeout", 0, "Per-file tool timeout (0 waits indefinitely)")
	f.StringVar(&o.output, "output", domain.DefaultOutputFile, "Spreadsheet file name written into the directory")
	f.BoolVar(&o.allFiles, "all-files", false, "Run the tool on every regular file, not only archives")
	f.BoolVar(&o.useCache, "cache", false, "Reuse results for bundles that have not changed")
	f.BoolVar(&o.clearCache, "clear-cache", false, "Drop cached results before the run")
	f.BoolVar(&o.record, "record", false, "Append this run to the directory's run history")
	f.BoolVar(&o.jsonOutput, "json", false, "Output the run result as JSON")
	f.BoolVar(&o.verbose, "verbose", false, "Log tool invocations and timings to stderr")
}

func runSummarize(cmd *cobra.Command, dir string, opts runOptions) error {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrPathNotFound, dir)
		}
		return err
	}

	cfg, err := resolveConfig(cmd, dir, opts)
	if err != nil {
		return err
	}

	if opts.clearCache {
		if err := cache.New().Invalidate(dir); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose, opts.jsonOutput)
	svc := newSummarizeService(cfg, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress domain.ProgressReporter
	if !opts.jsonOutput {
		progress = tui.NewTracer(cmd.OutOrStdout())
	}

	result, err := svc.Summarize(ctx, dir, cfg, progress)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return nil
}

// resolveConfig loads the config file and lays explicitly set flags over it.
func resolveConfig(cmd *cobra.Command, dir string, opts runOptions) (domain.Config, error) {
	loader := config.New()

	var (
		cfg domain.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = loader.LoadFile(opts.configPath)
	} else {
		cfg, err = loader.Load(dir)
	}
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("tool") {
		cfg.Tool = opts.tool
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("output") {
		cfg.OutputFile = opts.output
	}
	if flags.Changed("all-files") {
		cfg.ClassifyPolicy = domain.PolicyArchives
		if opts.allFiles {
			cfg.ClassifyPolicy = domain.PolicyAll
		}
	}
	if flags.Changed("cache") {
		cfg.Cache = opts.useCache
	}
	if flags.Changed("record") {
		cfg.RecordHistory = opts.record
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg.WithDefaults(), nil
}

func newSummarizeService(cfg domain.Config, logger *slog.Logger) *application.SummarizeService {
	return application.NewSummarizeService(
		scanner.New(),
		asadm.New(cfg.Tool, cfg.Timeout, logger),
		parser.New(),
		xlsx.New(cfg.SheetName),
	).
		WithCache(cache.New()).
		WithHistory(history.New()).
		WithLogger(logger)
}

// newLogger logs errors only by default since the trace already shows
// per-file diagnostics. JSON mode has no trace, so warnings are logged too.
func newLogger(w io.Writer, verbose, jsonOutput bool) *slog.Logger {
	level := slog.LevelError
	switch {
	case verbose:
		level = slog.LevelDebug
	case jsonOutput:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
