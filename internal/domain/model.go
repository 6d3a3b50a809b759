package domain

import "time"

// UnknownCluster is reported when the summary has no cluster name.
const UnknownCluster = "Unknown"

// DirEntry is one immediate entry of the input directory.
type DirEntry struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Regular bool      `json:"regular"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Summary holds the fields scraped from one summary report.
type Summary struct {
	ClusterName string  `json:"cluster_name"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
}

// ExtractionResult is the outcome of running the summary report against one bundle.
// Valid implies both a cluster name and a parsed usage number are present.
type ExtractionResult struct {
	File           string  `json:"file"`
	ClusterName    string  `json:"cluster_name"`
	LicenseUsageGB float64 `json:"license_usage_gb"`
	Value          float64 `json:"value"`
	Unit           string  `json:"unit"`
	UnitKnown      bool    `json:"unit_known"`
	Valid          bool    `json:"valid"`
}

// NewExtractionResult converts a scraped summary into a result row for file.
func NewExtractionResult(file string, s Summary) ExtractionResult {
	gb, known := ToGigabytes(s.Value, s.Unit)
	name := s.ClusterName
	if name == "" {
		name = UnknownCluster
	}
	return ExtractionResult{
		File:           file,
		ClusterName:    name,
		LicenseUsageGB: gb,
		Value:          s.Value,
		Unit:           s.Unit,
		UnitKnown:      known,
		Valid:          true,
	}
}

// SkippedFile records a directory entry the classifier rejected.
type SkippedFile struct {
	Name   string     `json:"name"`
	Reason SkipReason `json:"reason"`
}

// FailedFile records an accepted entry that produced no row.
type FailedFile struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// RunResult describes one complete pass over a directory.
type RunResult struct {
	RunID      string             `json:"run_id"`
	Directory  string             `json:"directory"`
	OutputPath string             `json:"output_path"`
	Rows       []ExtractionResult `json:"rows"`
	Skipped    []SkippedFile      `json:"skipped,omitempty"`
	Failed     []FailedFile       `json:"failed,omitempty"`
	Warnings   []string           `json:"warnings,omitempty"`
	CacheHits  int                `json:"cache_hits"`
	StartedAt  time.Time          `json:"started_at"`
	Duration   time.Duration      `json:"duration"`
}

// Processed returns the number of rows written.
func (r *RunResult) Processed() int { return len(r.Rows) }

// TotalGB sums the license usage of every row.
func (r *RunResult) TotalGB() float64 {
	var total float64
	for _, row := range r.Rows {
		total += row.LicenseUsageGB
	}
	return RoundGB(total)
}
