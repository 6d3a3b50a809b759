package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUsageMissing means the summary report had no "License Usage Latest" line.
	ErrUsageMissing = errors.New("license usage not found in summary output")
	// ErrPathNotFound means the input directory does not exist.
	ErrPathNotFound = errors.New("path does not exist")
	// ErrNotDirectory means the input path is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
)

// ToolError reports a non-zero exit from the administration tool.
type ToolError struct {
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("tool exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("tool exited with status %d: %s", e.ExitCode, msg)
}
