package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the full command tree the way main does, with the
// environment pointed at temp storage.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOURTRACK_DATA_DIR", filepath.Join(dir, "user_data"))
	t.Setenv("HOURTRACK_SETTINGS_DB", filepath.Join(dir, "settings.db"))
	t.Setenv("HOURTRACK_BACKEND", "csv")
}

func TestLogAndToday(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "log", "Reading", "45", "-c", "Leisure")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if !strings.Contains(out, `Logged "Reading" (Leisure`) {
		t.Fatalf("log output = %q", out)
	}

	out, err = runCommand(t, "today")
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if !strings.Contains(out, "Reading") || !strings.Contains(out, "45 mins") {
		t.Fatalf("today output = %q", out)
	}
	if !strings.Contains(out, "Remaining: 15 mins") {
		t.Fatalf("expected 15m remaining under default goal, got %q", out)
	}
}

func TestGoalCongratulation(t *testing.T) {
	setupEnv(t)

	if _, err := runCommand(t, "goal", "30"); err != nil {
		t.Fatalf("goal: %v", err)
	}
	out, err := runCommand(t, "log", "Workout", "40", "-c", "Exercise")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if !strings.Contains(out, "Congratulations") {
		t.Fatalf("expected congratulation, got %q", out)
	}

	// Only the first crossing congratulates.
	out, err = runCommand(t, "log", "Stretching", "10", "-c", "Exercise")
	if err != nil {
		t.Fatalf("second log: %v", err)
	}
	if strings.Contains(out, "Congratulations") {
		t.Fatalf("second crossing must stay quiet, got %q", out)
	}
}

func TestDeleteByPosition(t *testing.T) {
	setupEnv(t)

	for _, args := range [][]string{
		{"log", "Email", "30", "-c", "Work"},
		{"log", "Walk", "20", "-c", "Exercise"},
	} {
		if _, err := runCommand(t, args...); err != nil {
			t.Fatalf("log %v: %v", args, err)
		}
	}

	out, err := runCommand(t, "delete", "1", "--yes")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "Deleted record #1") {
		t.Fatalf("delete output = %q", out)
	}

	out, err = runCommand(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if strings.Contains(out, "Email") || !strings.Contains(out, "Walk") {
		t.Fatalf("history after delete = %q", out)
	}
}

func TestDeleteWithoutConfirmAborts(t *testing.T) {
	setupEnv(t)
	if _, err := runCommand(t, "log", "Email", "30"); err != nil {
		t.Fatalf("log: %v", err)
	}

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("n\n"))
	root.SetArgs([]string{"delete", "1"})
	if err := root.Execute(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Fatalf("expected abort, got %q", out.String())
	}

	out2, err := runCommand(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out2, "Email") {
		t.Fatalf("record should survive an aborted delete, got %q", out2)
	}
}

func TestEditKeepsUnsetFields(t *testing.T) {
	setupEnv(t)
	if _, err := runCommand(t, "log", "Email", "30", "-c", "Work"); err != nil {
		t.Fatalf("log: %v", err)
	}

	if _, err := runCommand(t, "edit", "1", "--minutes", "50"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	out, err := runCommand(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "Email") || !strings.Contains(out, "50 mins") {
		t.Fatalf("history after edit = %q", out)
	}
}

func TestUserSwitching(t *testing.T) {
	setupEnv(t)

	if _, err := runCommand(t, "register", "alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	out, err := runCommand(t, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if strings.TrimSpace(out) != "alice" {
		t.Fatalf("whoami = %q, want alice", out)
	}

	if _, err := runCommand(t, "log", "Email", "30"); err != nil {
		t.Fatalf("log as alice: %v", err)
	}

	// The -u flag overrides the stored user without switching it.
	out, err = runCommand(t, "history", "-u", "bob")
	if err != nil {
		t.Fatalf("history as bob: %v", err)
	}
	if strings.Contains(out, "Email") {
		t.Fatalf("bob must not see alice's records, got %q", out)
	}
	out, err = runCommand(t, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if strings.TrimSpace(out) != "alice" {
		t.Fatalf("stored user changed by -u flag: %q", out)
	}
}

func TestExportRefusesOverwriteWithoutForce(t *testing.T) {
	setupEnv(t)
	if _, err := runCommand(t, "log", "Email", "30"); err != nil {
		t.Fatalf("log: %v", err)
	}

	dst := filepath.Join(t.TempDir(), "out.csv")
	if _, err := runCommand(t, "export", dst); err != nil {
		t.Fatalf("export: %v", err)
	}

	// Second export prompts; an empty stdin reads as "no".
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("\n"))
	root.SetArgs([]string{"export", dst})
	if err := root.Execute(); err != nil {
		t.Fatalf("second export: %v", err)
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Fatalf("expected abort on existing destination, got %q", out.String())
	}

	if out, err := runCommand(t, "export", dst, "--force"); err != nil || !strings.Contains(out, "History written") {
		t.Fatalf("forced export: out=%q err=%v", out, err)
	}
}
