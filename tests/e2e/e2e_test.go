package e2e_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/openkraft/ciusage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "ciusage-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "ciusage")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/ciusage")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return outBuf.String(), errBuf.String(), exitCode
}

// fakeTool stages an asadm stand-in that prints the fixture summary.
func fakeTool(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script tools are not supported on windows")
	}
	fixture, err := filepath.Abs("../../testdata/asadm/summary_full.txt")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "asadm")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\ncat '"+fixture+"'\n"), 0755))
	return path
}

// --- Argument Tests ---

func TestE2E_NoArguments(t *testing.T) {
	_, stderr, code := run(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "usage: ciusage <directory>")
}

func TestE2E_TooManyArguments(t *testing.T) {
	_, stderr, code := run(t, "a", "b")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "usage")
}

func TestE2E_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, stderr, code := run(t, missing)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "path does not exist: "+missing)
}

// --- Summarize Tests ---

func TestE2E_Summarize(t *testing.T) {
	tool := fakeTool(t)
	dir := t.TempDir()
	for _, name := range []string{"node1.tgz", "node2.tar.gz", "readme.md", "~$old.xlsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	stdout, _, code := run(t, dir, "--tool", tool)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Processing node1.tgz")
	assert.Contains(t, stdout, "Processing node2.tar.gz")
	assert.Contains(t, stdout, "Skipping readme.md")
	assert.FileExists(t, filepath.Join(dir, domain.DefaultOutputFile))
}

func TestE2E_SummarizeJSON(t *testing.T) {
	tool := fakeTool(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node1.zip"), []byte("x"), 0644))

	stdout, _, code := run(t, dir, "--tool", tool, "--json")
	require.Equal(t, 0, code)

	var result domain.RunResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "prod-east", result.Rows[0].ClusterName)
	assert.InDelta(t, 2560.0, result.Rows[0].LicenseUsageGB, 0.001)
}

func TestE2E_ToolNotFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node1.tgz"), []byte("x"), 0644))

	stdout, _, code := run(t, dir, "--tool", filepath.Join(t.TempDir(), "no-such-tool"))
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Failed to process node1.tgz")
	assert.FileExists(t, filepath.Join(dir, domain.DefaultOutputFile))
}

// --- Version Tests ---

func TestE2E_Version(t *testing.T) {
	stdout, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "ciusage")
}
