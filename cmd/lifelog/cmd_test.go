// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseDay, truncate, padRight, and end-to-end command flows.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/lifelog/internal/models"
	"github.com/harperreed/lifelog/internal/storage"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2026-08-30",
			want:  "2026-08-30",
		},
		{
			name:  "empty defaults to today",
			input: "",
			want:  models.Day(time.Now()),
		},
		{
			name:    "wrong order",
			input:   "30-08-2026",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "date with time",
			input:   "2026-08-30 08:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDay(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDay(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseDay(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("parseDay(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string no truncation",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "needs truncation",
			input:  "hello world this is a long string",
			maxLen: 10,
			want:   "hello w...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{"short string gets padded", "abc", 6, "abc   "},
		{"exact length unchanged", "abcdef", 6, "abcdef"},
		{"long string unchanged", "abcdefgh", 6, "abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	expected := []string{
		"domain", "category", "metric", "done", "undo", "perf",
		"stats", "streak", "journal", "export", "import", "sync", "mcp",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

// setupTestCLI redirects XDG paths to a temp directory so commands run
// against a throwaway SQLite database.
func setupTestCLI(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir := t.TempDir()

	originalData := os.Getenv("XDG_DATA_HOME")
	originalConfig := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_DATA_HOME", tmpDir)
	os.Setenv("XDG_CONFIG_HOME", tmpDir)

	// Pre-open the database to create the schema
	dbPath := filepath.Join(tmpDir, "lifelog", "lifelog.db")
	testDB, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	t.Cleanup(func() {
		if repo != nil {
			repo.Close()
			repo = nil
		}
		testDB.Close()
		os.Setenv("XDG_DATA_HOME", originalData)
		os.Setenv("XDG_CONFIG_HOME", originalConfig)
	})

	return testDB
}

func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestDomainAddCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Errorf("domain add failed: %v", err)
	}

	d, err := testDB.GetDomain("Sport")
	if err != nil {
		t.Fatalf("GetDomain failed: %v", err)
	}
	if d.Name != "Sport" {
		t.Errorf("Name = %s, want Sport", d.Name)
	}
}

func TestDomainAddCmdWithColor(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""

	if err := runCmd(t, "domain", "add", "Business", "--color", "cyan"); err != nil {
		t.Errorf("domain add with color failed: %v", err)
	}

	d, err := testDB.GetDomain("Business")
	if err != nil {
		t.Fatalf("GetDomain failed: %v", err)
	}
	if d.Color == nil || *d.Color != "cyan" {
		t.Error("Color not set correctly")
	}
}

func TestDomainRmCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "domain", "rm", "Sport"); err != nil {
		t.Errorf("domain rm failed: %v", err)
	}

	if _, err := testDB.GetDomain("Sport"); err == nil {
		t.Error("Expected domain to be deleted")
	}
}

func TestMetricAddCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""
	metricCategory = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Errorf("metric add failed: %v", err)
	}

	m, err := testDB.GetMetric("Training")
	if err != nil {
		t.Fatalf("GetMetric failed: %v", err)
	}
	if m.ImpactSimple != 20 || m.ImpactAdvanced != 50 || m.ImpactExceptional != 80 {
		t.Errorf("Expected default impacts 20/50/80, got %.0f/%.0f/%.0f",
			m.ImpactSimple, m.ImpactAdvanced, m.ImpactExceptional)
	}
}

func TestMetricAddCmdCustomImpacts(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""
	metricCategory = ""

	if err := runCmd(t, "domain", "add", "Learning"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Learning", "Reading",
		"--simple", "10", "--advanced", "30", "--exceptional", "60"); err != nil {
		t.Errorf("metric add with impacts failed: %v", err)
	}

	m, err := testDB.GetMetric("Reading")
	if err != nil {
		t.Fatalf("GetMetric failed: %v", err)
	}
	if m.ImpactSimple != 10 || m.ImpactAdvanced != 30 || m.ImpactExceptional != 60 {
		t.Errorf("Expected impacts 10/30/60, got %.0f/%.0f/%.0f",
			m.ImpactSimple, m.ImpactAdvanced, m.ImpactExceptional)
	}
}

func TestMetricAddCmdUnknownDomain(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	metricCategory = ""

	if err := runCmd(t, "metric", "add", "Nope", "Training"); err == nil {
		t.Error("Expected error for unknown domain")
	}
}

func TestMetricPauseResumeCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""
	metricCategory = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}

	if err := runCmd(t, "metric", "pause", "Training"); err != nil {
		t.Errorf("metric pause failed: %v", err)
	}
	m, _ := testDB.GetMetric("Training")
	if m.Active {
		t.Error("Expected metric to be paused")
	}

	if err := runCmd(t, "metric", "resume", "Training"); err != nil {
		t.Errorf("metric resume failed: %v", err)
	}
	m, _ = testDB.GetMetric("Training")
	if !m.Active {
		t.Error("Expected metric to be active")
	}
}

func TestDoneCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""
	metricCategory = ""
	doneLevel = ""
	doneOn = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}

	if err := runCmd(t, "done", "Training", "--on", "2026-08-30", "--level", "advanced"); err != nil {
		t.Errorf("done failed: %v", err)
	}

	d, _ := testDB.GetDomain("Sport")
	events, err := testDB.ListMetricEvents(d.ID, "2026-08-30", "2026-08-30")
	if err != nil {
		t.Fatalf("ListMetricEvents failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].Level != models.LevelAdvanced {
		t.Errorf("Level = %s, want advanced", events[0].Level)
	}
}

func TestDoneCmdReplacesSameDay(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""
	metricCategory = ""
	doneLevel = ""
	doneOn = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}

	if err := runCmd(t, "done", "Training", "--on", "2026-08-30"); err != nil {
		t.Fatalf("first done failed: %v", err)
	}
	if err := runCmd(t, "done", "Training", "--on", "2026-08-30", "--level", "exceptional"); err != nil {
		t.Fatalf("second done failed: %v", err)
	}

	d, _ := testDB.GetDomain("Sport")
	events, _ := testDB.ListMetricEvents(d.ID, "2026-08-30", "2026-08-30")
	if len(events) != 1 {
		t.Fatalf("Expected 1 event after re-done, got %d", len(events))
	}
	if events[0].Level != models.LevelExceptional {
		t.Errorf("Level = %s, want exceptional", events[0].Level)
	}
}

func TestDoneCmdCustomImpact(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""
	metricCategory = ""
	doneLevel = ""
	doneOn = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}

	if err := runCmd(t, "done", "Training", "--on", "2026-08-30", "--impact", "7"); err != nil {
		t.Errorf("done with impact failed: %v", err)
	}

	d, _ := testDB.GetDomain("Sport")
	events, _ := testDB.ListMetricEvents(d.ID, "2026-08-30", "2026-08-30")
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].CustomImpact == nil || *events[0].CustomImpact != 7 {
		t.Errorf("CustomImpact = %v, want 7", events[0].CustomImpact)
	}
}

func TestDoneCmdInvalidLevel(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	metricCategory = ""
	doneLevel = ""
	doneOn = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}

	if err := runCmd(t, "done", "Training", "--level", "heroic"); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestUndoCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""
	metricCategory = ""
	doneLevel = ""
	doneOn = ""
	undoOn = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}
	if err := runCmd(t, "done", "Training", "--on", "2026-08-30"); err != nil {
		t.Fatalf("done failed: %v", err)
	}

	if err := runCmd(t, "undo", "Training", "--on", "2026-08-30"); err != nil {
		t.Errorf("undo failed: %v", err)
	}

	d, _ := testDB.GetDomain("Sport")
	events, _ := testDB.ListMetricEvents(d.ID, "2026-08-30", "2026-08-30")
	if len(events) != 0 {
		t.Errorf("Expected no events after undo, got %d", len(events))
	}
}

func TestUndoCmdEmptyDay(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	metricCategory = ""
	undoOn = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}

	if err := runCmd(t, "undo", "Training", "--on", "2026-08-30"); err == nil {
		t.Error("Expected error for undo on an empty day")
	}
}

func TestPerfAddAndLogCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""
	perfCategory = ""
	perfNote = ""
	perfOn = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "perf", "add", "Sport", "Race Day"); err != nil {
		t.Errorf("perf add failed: %v", err)
	}
	if err := runCmd(t, "perf", "log", "Race Day", "40", "--note", "New PB", "--on", "2026-08-30"); err != nil {
		t.Errorf("perf log failed: %v", err)
	}

	d, _ := testDB.GetDomain("Sport")
	records, err := testDB.ListRecords(d.ID, "2026-08-30", "2026-08-30")
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Impact != 40 {
		t.Errorf("Impact = %v, want 40", records[0].Impact)
	}
	if records[0].Note == nil || *records[0].Note != "New PB" {
		t.Error("Note not set correctly")
	}
}

func TestPerfLogCmdUnknownPerformance(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	perfCategory = ""
	perfNote = ""
	perfOn = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}

	if err := runCmd(t, "perf", "log", "Nope", "40"); err == nil {
		t.Error("Expected error for unknown performance")
	}
}

func TestStatsCmd(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	metricCategory = ""
	doneLevel = ""
	doneOn = ""
	statsCategory = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}
	if err := runCmd(t, "done", "Training", "--level", "advanced"); err != nil {
		t.Fatalf("done failed: %v", err)
	}

	if err := runCmd(t, "stats", "Sport", "--days", "7"); err != nil {
		t.Errorf("stats failed: %v", err)
	}
	if err := runCmd(t, "stats", "Sport", "--days", "7", "--scale", "10"); err != nil {
		t.Errorf("stats with scale failed: %v", err)
	}
	if err := runCmd(t, "stats", "Sport", "--days", "7", "--chart"); err != nil {
		t.Errorf("stats with chart failed: %v", err)
	}
}

func TestStatsCmdUnknownDomain(t *testing.T) {
	setupTestCLI(t)
	statsCategory = ""

	if err := runCmd(t, "stats", "Nope"); err == nil {
		t.Error("Expected error for unknown domain")
	}
}

func TestStatsCmdNonPositiveDays(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	statsCategory = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}

	if err := runCmd(t, "stats", "Sport", "--days", "0"); err == nil {
		t.Error("Expected error for zero-day window")
	}
	if err := runCmd(t, "stats", "Sport", "--days=-3"); err == nil {
		t.Error("Expected error for negative day window")
	}
}

func TestStreakCmd(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	metricCategory = ""
	doneLevel = ""
	doneOn = ""
	statsCategory = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}
	if err := runCmd(t, "metric", "add", "Sport", "Training"); err != nil {
		t.Fatalf("metric add failed: %v", err)
	}
	if err := runCmd(t, "done", "Training"); err != nil {
		t.Fatalf("done failed: %v", err)
	}

	if err := runCmd(t, "streak", "Sport"); err != nil {
		t.Errorf("streak failed: %v", err)
	}
}

func TestJournalAddCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	journalOn = ""

	if err := runCmd(t, "journal", "add", "Strong", "week.", "--on", "2026-08-30"); err != nil {
		t.Errorf("journal add failed: %v", err)
	}

	entries, err := testDB.ListJournalEntries(10)
	if err != nil {
		t.Fatalf("ListJournalEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Body != "Strong week." {
		t.Errorf("Body = %q, want %q", entries[0].Body, "Strong week.")
	}
}

func TestJournalHighlightCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	journalOn = ""
	insightNote = ""

	if err := runCmd(t, "journal", "add", "Legs felt fresh."); err != nil {
		t.Fatalf("journal add failed: %v", err)
	}

	entries, _ := testDB.ListJournalEntries(1)
	if len(entries) != 1 {
		t.Fatal("Expected 1 entry")
	}
	id := entries[0].ID.String()[:8]

	if err := runCmd(t, "journal", "highlight", id, "fresh legs", "--note", "Taper works"); err != nil {
		t.Errorf("journal highlight failed: %v", err)
	}

	insights, err := testDB.ListInsights(&entries[0].ID)
	if err != nil {
		t.Fatalf("ListInsights failed: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("Expected 1 insight, got %d", len(insights))
	}
	if insights[0].Highlight != "fresh legs" {
		t.Errorf("Highlight = %q, want %q", insights[0].Highlight, "fresh legs")
	}
}

func TestSyncRepairCmd(t *testing.T) {
	testDB := setupTestCLI(t)
	domainColor = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}

	if err := runCmd(t, "sync", "repair"); err != nil {
		t.Errorf("sync repair failed: %v", err)
	}

	// Data survives the repair pass.
	if _, err := testDB.GetDomain("Sport"); err != nil {
		t.Errorf("GetDomain after repair failed: %v", err)
	}
}

func TestExportCmdJSON(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	exportOutput = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}

	outFile := filepath.Join(t.TempDir(), "backup.json")
	if err := runCmd(t, "export", "json", "-o", outFile); err != nil {
		t.Errorf("export json failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read export file: %v", err)
	}
	if !bytes.Contains(data, []byte("Sport")) {
		t.Error("Expected domain name in export")
	}
}

func TestExportCmdYAML(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	exportOutput = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}

	outFile := filepath.Join(t.TempDir(), "backup.yaml")
	if err := runCmd(t, "export", "yaml", "-o", outFile); err != nil {
		t.Errorf("export yaml failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read export file: %v", err)
	}
	if !bytes.Contains(data, []byte("Sport")) {
		t.Error("Expected domain name in export")
	}
}

func TestImportCmd(t *testing.T) {
	setupTestCLI(t)
	domainColor = ""
	exportOutput = ""

	if err := runCmd(t, "domain", "add", "Sport"); err != nil {
		t.Fatalf("domain add failed: %v", err)
	}

	outFile := filepath.Join(t.TempDir(), "backup.json")
	if err := runCmd(t, "export", "json", "-o", outFile); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	// Importing into the same store collides on the domain ID.
	if err := runCmd(t, "import", outFile); err == nil {
		t.Error("Expected error importing duplicate data")
	}
}

func TestImportCmdMissingFile(t *testing.T) {
	setupTestCLI(t)

	if err := runCmd(t, "import", "/nonexistent/backup.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}
