package domain

// ReportHeader is the fixed first row of every report.
var ReportHeader = []string{"File", "Cluster Name", "License Usage (GB)"}

// Report accumulates result rows in insertion order. It is built once per
// run and handed to a ReportWriter.
type Report struct {
	rows []ExtractionResult
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Append adds r to the report. Invalid results are ignored and false is returned.
func (r *Report) Append(res ExtractionResult) bool {
	if !res.Valid || res.ClusterName == "" {
		return false
	}
	r.rows = append(r.rows, res)
	return true
}

// Rows returns a copy of the accumulated rows.
func (r *Report) Rows() []ExtractionResult {
	out := make([]ExtractionResult, len(r.rows))
	copy(out, r.rows)
	return out
}

// Len returns the number of rows.
func (r *Report) Len() int { return len(r.rows) }

// Values returns every row as spreadsheet cell values, header first.
func (r *Report) Values() [][]any {
	out := make([][]any, 0, len(r.rows)+1)
	header := make([]any, len(ReportHeader))
	for i, h := range ReportHeader {
		header[i] = h
	}
	out = append(out, header)
	for _, row := range r.rows {
		out = append(out, []any{row.File, row.ClusterName, row.LicenseUsageGB})
	}
	return out
}
