package domain

import (
	"context"
	"time"
)

// DirectoryLister lists the immediate entries of a directory in listing order.
type DirectoryLister interface {
	List(dir string) ([]DirEntry, error)
}

// ToolOutput is the captured text of one tool invocation.
type ToolOutput struct {
	Stdout string
	Stderr string
}

// SummaryRunner runs the administration tool's summary report against one archive.
// A non-zero exit is reported as *ToolError.
type SummaryRunner interface {
	RunSummary(ctx context.Context, archivePath string) (*ToolOutput, error)
}

// ReportParser extracts the summary fields from the tool's stdout.
// It returns ErrUsageMissing when no usage line is present.
type ReportParser interface {
	Parse(stdout string) (Summary, error)
}

// ReportWriter persists a finished report.
type ReportWriter interface {
	Write(path string, report *Report) error
}

// ConfigLoader loads run configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// ResultCache stores previously extracted results for a directory.
type ResultCache interface {
	Load(dir string) (*ResultCacheData, error)
	Save(dir string, data *ResultCacheData) error
}

// RunHistory stores one entry per recorded run.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// ProgressReporter receives the human-readable trace of a run.
type ProgressReporter interface {
	Processing(name string)
	Skipping(name string, reason SkipReason)
	Failed(name string, err error)
	Warning(name, msg string)
	Done(result *RunResult)
}

// RunEntry is one line of run history.
type RunEntry struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Processed int       `json:"processed"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	TotalGB   float64   `json:"total_gb"`
	Output    string    `json:"output"`
}

// NewRunEntry summarizes result as a history entry.
func NewRunEntry(result *RunResult) RunEntry {
	return RunEntry{
		RunID:     result.RunID,
		Timestamp: result.StartedAt,
		Processed: result.Processed(),
		Skipped:   len(result.Skipped),
		Failed:    len(result.Failed),
		TotalGB:   result.TotalGB(),
		Output:    result.OutputPath,
	}
}
