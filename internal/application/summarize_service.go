package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/openkraft/ciusage/internal/domain"
)

// SummarizeService orchestrates one run over a directory:
// list entries → classify → run summary → parse → convert → write report once.
type SummarizeService struct {
	lister  domain.DirectoryLister
	runner  domain.SummaryRunner
	parser  domain.ReportParser
	writer  domain.ReportWriter
	cache   domain.ResultCache
	history domain.RunHistory
	logger  *slog.Logger
}

func NewSummarizeService(
	lister domain.DirectoryLister,
	runner domain.SummaryRunner,
	parser domain.ReportParser,
	writer domain.ReportWriter,
) *SummarizeService {
	return &SummarizeService{
		lister: lister,
		runner: runner,
		parser: parser,
		writer: writer,
		logger: slog.Default(),
	}
}

// WithCache enables result caching for runs whose config asks for it.
func (s *SummarizeService) WithCache(c domain.ResultCache) *SummarizeService {
	s.cache = c
	return s
}

// WithHistory enables run history for runs whose config asks for it.
func (s *SummarizeService) WithHistory(h domain.RunHistory) *SummarizeService {
	s.history = h
	return s
}

func (s *SummarizeService) WithLogger(l *slog.Logger) *SummarizeService {
	if l != nil {
		s.logger = l
	}
	return s
}

// Summarize processes every immediate entry of dir and writes the report into
// dir. Per-file failures are recorded in the result and never abort the run.
// Nothing is written if ctx is cancelled before the report is saved.
func (s *SummarizeService) Summarize(ctx context.Context, dir string, cfg domain.Config, progress domain.ProgressReporter) (*domain.RunResult, error) {
	cfg = cfg.WithDefaults()
	if progress == nil {
		progress = nopProgress{}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	result := &domain.RunResult{
		RunID:     uuid.NewString(),
		Directory: absDir,
		StartedAt: time.Now().UTC(),
	}
	log := s.logger.With("run_id", result.RunID)

	entries, err := s.lister.List(absDir)
	if err != nil {
		return nil, fmt.Errorf("listing directory: %w", err)
	}

	cached := s.loadCache(absDir, cfg, log)
	report := domain.NewReport()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run interrupted: %w", err)
		}

		c := domain.ClassifyWith(cfg.ClassifyPolicy, entry.Name, entry.Regular)
		if !c.Accepted {
			progress.Skipping(entry.Name, c.Reason)
			result.Skipped = append(result.Skipped, domain.SkippedFile{Name: entry.Name, Reason: c.Reason})
			continue
		}

		progress.Processing(entry.Name)

		if res, ok := cached.Lookup(entry, cfg.Tool); ok {
			log.Debug("cache hit", "file", entry.Name)
			result.CacheHits++
			warnUnknownUnit(res, result, progress, log)
			report.Append(res)
			continue
		}

		res, err := s.Extract(ctx, entry)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("run interrupted: %w", ctxErr)
			}
			log.Warn("file produced no row", "file", entry.Name, "error", err)
			progress.Failed(entry.Name, err)
			result.Failed = append(result.Failed, domain.FailedFile{Name: entry.Name, Error: err.Error()})
			continue
		}

		warnUnknownUnit(res, result, progress, log)
		report.Append(res)
		if cached != nil {
			cached.Put(entry, cfg.Tool, res)
		}
	}

	result.OutputPath = filepath.Join(absDir, cfg.OutputFile)
	if err := s.writer.Write(result.OutputPath, report); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	result.Rows = report.Rows()
	result.Duration = time.Since(result.StartedAt)

	if cached != nil {
		if err := s.cache.Save(absDir, cached); err != nil {
			log.Warn("saving result cache", "error", err)
		}
	}
	if cfg.RecordHistory && s.history != nil {
		if err := s.history.Save(absDir, domain.NewRunEntry(result)); err != nil {
			log.Warn("saving run history", "error", err)
		}
	}

	log.Info("run complete", "processed", result.Processed(), "skipped", len(result.Skipped),
		"failed", len(result.Failed), "output", result.OutputPath)
	progress.Done(result)
	return result, nil
}

// Extract runs the summary report against one entry and converts its usage.
// It returns domain.ErrUsageMissing when the report has no usage line.
func (s *SummarizeService) Extract(ctx context.Context, entry domain.DirEntry) (domain.ExtractionResult, error) {
	out, err := s.runner.RunSummary(ctx, entry.Path)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	summary, err := s.parser.Parse(out.Stdout)
	if err != nil {
		if errors.Is(err, domain.ErrUsageMissing) {
			return domain.ExtractionResult{}, err
		}
		return domain.ExtractionResult{}, fmt.Errorf("parsing summary: %w", err)
	}

	return domain.NewExtractionResult(entry.Name, summary), nil
}

// loadCache returns nil when caching is off. A broken cache is logged and
// replaced with an empty one.
func (s *SummarizeService) loadCache(dir string, cfg domain.Config, log *slog.Logger) *domain.ResultCacheData {
	if !cfg.Cache || s.cache == nil {
		return nil
	}
	data, err := s.cache.Load(dir)
	if err != nil || data == nil {
		log.Warn("ignoring result cache", "error", err)
		return &domain.ResultCacheData{Directory: dir}
	}
	return data
}

// warnUnknownUnit reports the bytes fallback for res. Cached rows go through
// it too so every run carries the same diagnostics.
func warnUnknownUnit(res domain.ExtractionResult, result *domain.RunResult, progress domain.ProgressReporter, log *slog.Logger) {
	if res.UnitKnown {
		return
	}
	msg := fmt.Sprintf("unknown unit '%s', treating as bytes", res.Unit)
	log.Warn(msg, "file", res.File)
	progress.Warning(res.File, msg)
	result.Warnings = append(result.Warnings, res.File+": "+msg)
}

type nopProgress struct{}

func (nopProgress) Processing(string)                  {}
func (nopProgress) Skipping(string, domain.SkipReason) {}
func (nopProgress) Failed(string, error)               {}
func (nopProgress) Warning(string, string)             {}
func (nopProgress) Done(*domain.RunResult)             {}
