package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "slidey.log")

	cleanup, err := Setup(Config{Path: path, Debug: true})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	if Path() != path {
		t.Fatalf("expected path %s, got %s", path, Path())
	}

	L().Debug("build.slide.added", "slide", 1)
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(b)
	for _, want := range []string{`"msg":"logger.initialized"`, `"msg":"build.slide.added"`, `"source"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log, got %s", want, out)
		}
	}

	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}
}

func TestSetup_EmptyPathDiscards(t *testing.T) {
	cleanup, err := Setup(Config{})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer cleanup()

	if IsReady() == nil {
		t.Fatalf("expected no log file")
	}
	L().Info("ignored")
}
