package domain_test

import (
	"testing"

	"github.com/openkraft/ciusage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_AppendKeepsOrder(t *testing.T) {
	r := domain.NewReport()
	assert.True(t, r.Append(domain.NewExtractionResult("b.tgz", domain.Summary{ClusterName: "east", Value: 1, Unit: "GB"})))
	assert.True(t, r.Append(domain.NewExtractionResult("a.tgz", domain.Summary{ClusterName: "west", Value: 2, Unit: "TB"})))

	rows := r.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "b.tgz", rows[0].File)
	assert.Equal(t, "a.tgz", rows[1].File)
	assert.Equal(t, 2048.0, rows[1].LicenseUsageGB)
}

func TestReport_RejectsInvalid(t *testing.T) {
	r := domain.NewReport()
	assert.False(t, r.Append(domain.ExtractionResult{File: "x.tgz"}))
	assert.Equal(t, 0, r.Len())
}

func TestReport_RowsIsACopy(t *testing.T) {
	r := domain.NewReport()
	r.Append(domain.NewExtractionResult("a.tgz", domain.Summary{ClusterName: "c", Value: 1, Unit: "GB"}))
	rows := r.Rows()
	rows[0].File = "mutated"
	assert.Equal(t, "a.tgz", r.Rows()[0].File)
}

func TestReport_ValuesHeaderOnly(t *testing.T) {
	vals := domain.NewReport().Values()
	require.Len(t, vals, 1)
	assert.Equal(t, []any{"File", "Cluster Name", "License Usage (GB)"}, vals[0])
}

func TestReport_Values(t *testing.T) {
	r := domain.NewReport()
	r.Append(domain.NewExtractionResult("a.tgz", domain.Summary{ClusterName: "prod", Value: 1024, Unit: "MB"}))
	vals := r.Values()
	require.Len(t, vals, 2)
	assert.Equal(t, []any{"a.tgz", "prod", 1.0}, vals[1])
}

func TestNewExtractionResult_EmptyClusterBecomesUnknown(t *testing.T) {
	res := domain.NewExtractionResult("a.tgz", domain.Summary{Value: 1, Unit: "GB"})
	assert.Equal(t, domain.UnknownCluster, res.ClusterName)
	assert.True(t, res.Valid)
}

func TestNewExtractionResult_UnknownUnit(t *testing.T) {
	res := domain.NewExtractionResult("a.tgz", domain.Summary{ClusterName: "c", Value: 5, Unit: "XB"})
	assert.False(t, res.UnitKnown)
	assert.True(t, res.Valid)
	assert.Equal(t, 0.0, res.LicenseUsageGB)
}
