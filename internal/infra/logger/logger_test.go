package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLogUnderRoot(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}
	want := filepath.Join(tmp, ".solid", "logs", "solid.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("demo.run", "name", "journal")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"msg":"logger.initialized"`) || !strings.Contains(out, `"msg":"demo.run"`) ||
		!strings.Contains(out, `"msg":"logger.closed"`) {
		t.Fatalf("unexpected log contents:\n%s", out)
	}
}

func TestSetup_UnwritableRootFallsBackToDiscard(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Setup(Config{Root: blocker}); err == nil {
		t.Fatalf("expected error when root is a file")
	}
	if IsReady() == nil {
		t.Fatalf("expected logger not ready")
	}
	L().Info("still.safe")
}

func TestNew_LevelFollowsDebug(t *testing.T) {
	var buf strings.Builder

	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed, got %q", buf.String())
	}

	New(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}
