package xlsx_test

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/openkraft/ciusage/internal/adapters/outbound/xlsx"
	"github.com/openkraft/ciusage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheet}, f.GetSheetList())
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return rows
}

func TestWriter_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, xlsx.New("License Usage").Write(path, domain.NewReport()))

	rows := readRows(t, path, "License Usage")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"File", "Cluster Name", "License Usage (GB)"}, rows[0])
}

func TestWriter_RowsInOrder(t *testing.T) {
	report := domain.NewReport()
	report.Append(domain.NewExtractionResult("b.tgz", domain.Summary{ClusterName: "east", Value: 2.5, Unit: "TB"}))
	report.Append(domain.NewExtractionResult("a.tgz", domain.Summary{Value: 1024, Unit: "MB"}))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, xlsx.New("License Usage").Write(path, report))

	rows := readRows(t, path, "License Usage")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"b.tgz", "east", "2560"}, rows[1])
	assert.Equal(t, []string{"a.tgz", "Unknown", "1"}, rows[2])
}

func TestWriter_UsageFormattedToTwoDecimals(t *testing.T) {
	report := domain.NewReport()
	report.Append(domain.NewExtractionResult("a.tgz", domain.Summary{ClusterName: "c", Value: 1.5, Unit: "GB"}))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, xlsx.New("").Write(path, report))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	formatted, err := f.GetCellValue("License Usage", "C2")
	require.NoError(t, err)
	assert.Equal(t, "1.50", formatted)
}

func TestWriter_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	report := domain.NewReport()
	report.Append(domain.NewExtractionResult("a.tgz", domain.Summary{ClusterName: "c", Value: 1, Unit: "GB"}))
	require.NoError(t, xlsx.New("License Usage").Write(path, report))

	require.NoError(t, xlsx.New("License Usage").Write(path, domain.NewReport()))
	assert.Len(t, readRows(t, path, "License Usage"), 1)
}

func TestWriter_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.xlsx")
	err := xlsx.New("License Usage").Write(path, domain.NewReport())
	assert.Error(t, err)
}
