package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func testApp(stdout io.Writer) *appContext {
	return &appContext{ctx: context.Background(), stdout: stdout, stderr: io.Discard}
}

func TestRunCommandExecutesScript(t *testing.T) {
	path := writeScript(t, t.TempDir(), "count.csc", `let x = 0;
while x < 3 {
	x = x + 1;
	print(x);
}`)

	var out bytes.Buffer
	cmd := &RunCmd{Script: path, Profile: "off"}
	if err := cmd.Run(testApp(&out)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "1\n2\n3\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunCommandCompileError(t *testing.T) {
	path := writeScript(t, t.TempDir(), "bad.csc", "let x = ;")

	cmd := &RunCmd{Script: path, Profile: "off"}
	err := cmd.Run(testApp(io.Discard))
	if err == nil || !strings.Contains(err.Error(), "parse error") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestRunCommandHonorsLimitsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "spin.csc", "let x = 0;\nwhile 1 { x = x + 1; }")
	writeScript(t, dir, limitsFileName, "step_quota: 200\n")

	cmd := &RunCmd{Script: path, Profile: "off"}
	err := cmd.Run(testApp(io.Discard))
	if err == nil || !strings.Contains(err.Error(), "step quota exceeded") {
		t.Fatalf("expected step quota error, got %v", err)
	}
}

func TestRunCommandFlagOverridesLimitsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "ok.csc", "print(1);")
	writeScript(t, dir, limitsFileName, "step_quota: 1\n")

	var out bytes.Buffer
	cmd := &RunCmd{Script: path, StepQuota: 1000, Profile: "off"}
	if err := cmd.Run(testApp(&out)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "1\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestCheckCommandReportsShape(t *testing.T) {
	path := writeScript(t, t.TempDir(), "ok.csc", "let x = 1;\nprint(x);")

	var out bytes.Buffer
	cmd := &CheckCmd{Script: path}
	if err := cmd.Run(testApp(&out)); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out.String(), "2 top-level statements") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestCheckCommandRejectsInvalidScript(t *testing.T) {
	path := writeScript(t, t.TempDir(), "bad.csc", "while { }")

	cmd := &CheckCmd{Script: path}
	if err := cmd.Run(testApp(io.Discard)); err == nil {
		t.Fatalf("expected check failure")
	}
}
