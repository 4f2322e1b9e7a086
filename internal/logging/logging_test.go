package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestInit_Levels(t *testing.T) {
	var buf bytes.Buffer

	Init(&buf, false)
	slog.Debug("hidden")
	slog.Info("shown", "board", "b1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug record to be dropped, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "board=b1") {
		t.Errorf("Expected info record in text format, got %q", out)
	}

	buf.Reset()
	Init(&buf, true)
	slog.Debug("visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("Expected debug record with debug enabled, got %q", buf.String())
	}
}
