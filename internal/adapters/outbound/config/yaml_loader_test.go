package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	appconfig "github.com/openkraft/ciusage/internal/adapters/outbound/config"
	"github.com/openkraft/ciusage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ciusage.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
tool: /opt/aerospike/bin/asadm
timeout: 90s
output_file: usage.xlsx
classify_policy: all
cache: true
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/aerospike/bin/asadm", cfg.Tool)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, "usage.xlsx", cfg.OutputFile)
	assert.Equal(t, domain.PolicyAll, cfg.ClassifyPolicy)
	assert.True(t, cfg.Cache)
	assert.False(t, cfg.RecordHistory)
	assert.Equal(t, domain.DefaultSheetName, cfg.SheetName, "unset fields take defaults")
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .ciusage.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
output_file: report.csv
classify_policy: everything
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .ciusage.yaml")
	assert.Contains(t, err.Error(), "output_file")
	assert.Contains(t, err.Error(), "classify_policy")
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_LoadFileExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sheet_name: Usage\n"), 0644))

	cfg, err := appconfig.New().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Usage", cfg.SheetName)
	assert.Equal(t, domain.DefaultTool, cfg.Tool)
}

func TestYAMLLoader_LoadFileMissing(t *testing.T) {
	_, err := appconfig.New().LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
