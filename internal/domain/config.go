package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultTool       = "asadm"
	DefaultOutputFile = "collectinfo_license_usage.xlsx"
	DefaultSheetName  = "License Usage"
)

// Config holds run configuration loaded from .ciusage.yaml and flags.
type Config struct {
	Tool           string         `yaml:"tool"            json:"tool,omitempty"`
	Timeout        time.Duration  `yaml:"timeout"         json:"timeout,omitempty"`
	OutputFile     string         `yaml:"output_file"     json:"output_file,omitempty"`
	SheetName      string         `yaml:"sheet_name"      json:"sheet_name,omitempty"`
	ClassifyPolicy ClassifyPolicy `yaml:"classify_policy" json:"classify_policy,omitempty"`
	Cache          bool           `yaml:"cache"           json:"cache,omitempty"`
	RecordHistory  bool           `yaml:"record_history"  json:"record_history,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is specified.
// A zero Timeout means the tool may run indefinitely.
func DefaultConfig() Config {
	return Config{
		Tool:           DefaultTool,
		OutputFile:     DefaultOutputFile,
		SheetName:      DefaultSheetName,
		ClassifyPolicy: PolicyArchives,
	}
}

// WithDefaults fills every empty field from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Tool == "" {
		c.Tool = d.Tool
	}
	if c.OutputFile == "" {
		c.OutputFile = d.OutputFile
	}
	if c.SheetName == "" {
		c.SheetName = d.SheetName
	}
	if c.ClassifyPolicy == "" {
		c.ClassifyPolicy = d.ClassifyPolicy
	}
	return c
}

// Validate checks the configuration for invalid values. Empty fields are allowed.
func (c Config) Validate() error {
	var errs []string

	if c.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("timeout must not be negative, got %s", c.Timeout))
	}
	if c.OutputFile != "" {
		if filepath.Base(c.OutputFile) != c.OutputFile {
			errs = append(errs, fmt.Sprintf("output_file must be a file name, got %q", c.OutputFile))
		}
		if !strings.HasSuffix(strings.ToLower(c.OutputFile), ".xlsx") {
			errs = append(errs, fmt.Sprintf("output_file must end in .xlsx, got %q", c.OutputFile))
		}
	}
	if len(c.SheetName) > 31 || strings.ContainsAny(c.SheetName, `:\/?*[]`) {
		errs = append(errs, fmt.Sprintf("invalid sheet_name %q", c.SheetName))
	}
	if c.ClassifyPolicy != "" && !isValidPolicy(c.ClassifyPolicy) {
		errs = append(errs, fmt.Sprintf("unknown classify_policy %q (valid: archives, all)", c.ClassifyPolicy))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation: %s", strings.Join(errs, "; "))
	}
	return nil
}

func isValidPolicy(p ClassifyPolicy) bool {
	for _, v := range ValidPolicies {
		if v == p {
			return true
		}
	}
	return false
}
