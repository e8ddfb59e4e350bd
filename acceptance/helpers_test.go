package acceptance_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runFxa executes the fxa binary and returns stdout, stderr, and exit code.
func runFxa(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(fxaBinary, args...)
	cmd.Dir = dir
	cmd.Env = cleanEnv()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run fxa: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// cleanEnv returns the process environment without FENTARXIU_ variables so
// the developer's own settings do not leak into the runs.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "FENTARXIU_") {
			env = append(env, kv)
		}
	}
	return env
}

// runFxaExpect runs fxa expecting the given exit code and returns stdout.
func runFxaExpect(t *testing.T, want int, dir string, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runFxa(t, dir, args...)
	if exitCode != want {
		t.Fatalf("expected exit %d, got %d\nargs: %v\nstdout: %s\nstderr: %s", want, exitCode, args, stdout, stderr)
	}
	return stdout
}

// reportJSON runs fxa with --json and parses the report.
func reportJSON(t *testing.T, want int, dir string, args ...string) map[string]interface{} {
	t.Helper()
	stdout := runFxaExpect(t, want, dir, append([]string{"--json"}, args...)...)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\noutput: %s", err, stdout)
	}
	return result
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// mkdirs creates each directory under dir.
func mkdirs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.MkdirAll(filepath.Join(dir, n), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
	}
}

// readFile reads a file's content.
func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return string(content)
}

// fileExists checks if a file exists.
func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// summary extracts the summary object of a report.
func summary(t *testing.T, result map[string]interface{}) (total, failed int) {
	t.Helper()
	s, ok := result["summary"].(map[string]interface{})
	if !ok {
		t.Fatal("missing summary in result")
	}
	return int(s["total"].(float64)), int(s["failed"].(float64))
}
