// Package integration provides CLI and backend integration tests for gridstore.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// gridstoreBin is the path to the built gridstore binary.
	gridstoreBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetGridstoreBin sets the path to the gridstore binary (called from TestMain).
func SetGridstoreBin(path string) {
	gridstoreBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build gridstore: %v", buildErr)
	}
	if gridstoreBin == "" {
		t.Fatal("gridstore binary not built (gridstoreBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a gridstore command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunGridstore executes the gridstore CLI with the given arguments.
func (e *TestEnv) RunGridstore(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(gridstoreBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run gridstore: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunGridstore executes the CLI and fails the test on a non-zero exit.
func (e *TestEnv) MustRunGridstore(args ...string) CmdResult {
	e.t.Helper()

	result := e.RunGridstore(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("gridstore %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
