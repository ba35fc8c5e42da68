// ABOUTME: Integration tests for lifelog CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	lifelogBinary := filepath.Join(projectRoot, "lifelog")

	buildCmd := exec.Command("go", "build", "-o", lifelogBinary, "./cmd/lifelog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(lifelogBinary)

	// Redirect data and config to a temp directory
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(lifelogBinary, args...)
		cmd.Env = append(os.Environ(),
			"XDG_DATA_HOME="+tmpDir,
			"XDG_CONFIG_HOME="+tmpDir,
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Test adding a domain
	output, err := run("domain", "add", "Sport")
	if err != nil {
		t.Fatalf("Failed to add domain: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Sport") {
		t.Errorf("Expected 'Sport' in output, got: %s", output)
	}

	// Test adding a metric
	output, err = run("metric", "add", "Sport", "Training")
	if err != nil {
		t.Fatalf("Failed to add metric: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Training") {
		t.Errorf("Expected 'Training' in output, got: %s", output)
	}

	// Test checking it off
	output, err = run("done", "Training", "--level", "advanced")
	if err != nil {
		t.Fatalf("Failed to log done: %v\n%s", err, output)
	}

	// Test listing metrics
	output, err = run("metric", "list", "Sport")
	if err != nil {
		t.Fatalf("Failed to list metrics: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Training") {
		t.Errorf("Expected 'Training' in list output, got: %s", output)
	}

	// Test stats
	output, err = run("stats", "Sport", "--days", "7")
	if err != nil {
		t.Fatalf("Failed to get stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Score") {
		t.Errorf("Expected 'Score' in stats output, got: %s", output)
	}

	// Test a free performance
	output, err = run("perf", "add", "Sport", "Race Day")
	if err != nil {
		t.Fatalf("Failed to add performance: %v\n%s", err, output)
	}
	output, err = run("perf", "log", "Race Day", "40", "--note", "New PB")
	if err != nil {
		t.Fatalf("Failed to log performance: %v\n%s", err, output)
	}

	// Test journal
	output, err = run("journal", "add", "Strong week.")
	if err != nil {
		t.Fatalf("Failed to add journal entry: %v\n%s", err, output)
	}
	output, err = run("journal", "list")
	if err != nil {
		t.Fatalf("Failed to list journal: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Strong week.") {
		t.Errorf("Expected journal body in list output, got: %s", output)
	}
}
