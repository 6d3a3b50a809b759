package asadm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/openkraft/ciusage/internal/domain"
)

// Runner implements domain.SummaryRunner by shelling out to asadm.
type Runner struct {
	tool    string
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a Runner for tool. A zero timeout waits indefinitely.
func New(tool string, timeout time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{tool: tool, timeout: timeout, logger: logger}
}

// Args returns the argument list used to load archivePath as a collectinfo
// snapshot and run the summary report.
func Args(archivePath string) []string {
	return []string{"-c", "-f", archivePath, "-e", "summary"}
}

// RunSummary runs the summary report against archivePath and waits for it.
func (r *Runner) RunSummary(ctx context.Context, archivePath string) (*domain.ToolOutput, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.tool, Args(archivePath)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.logger.Debug("tool finished", "tool", r.tool, "archive", archivePath, "duration", time.Since(start))

	out := &domain.ToolOutput{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && r.timeout > 0 {
			return out, fmt.Errorf("running %s: timed out after %s", r.tool, r.timeout)
		}
		return out, fmt.Errorf("running %s: %w", r.tool, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, &domain.ToolError{ExitCode: exitErr.ExitCode(), Stderr: out.Stderr}
	}
	return out, fmt.Errorf("running %s: %w", r.tool, err)
}
