package diag

import (
	"strings"
	"testing"
)

type memSink struct {
	lines []string
}

func (m *memSink) WriteLine(line string) error {
	m.lines = append(m.lines, line)
	return nil
}

func (m *memSink) Close() error { return nil }

func TestLoggerFiltersBelowLevel(t *testing.T) {
	sink := &memSink{}
	l := New(sink, Info)

	l.Trace(0, "should be filtered")
	l.Debug(0, "should be filtered too")
	l.Info(0, "kept")

	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(sink.lines), sink.lines)
	}
	if !strings.Contains(sink.lines[0], "(info) kept") {
		t.Fatalf("unexpected line: %q", sink.lines[0])
	}
}

func TestLoggerLinePattern(t *testing.T) {
	sink := &memSink{}
	l := New(sink, Trace)
	l.Errorf(3, "transfer failed: %v", "disk full")

	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(sink.lines))
	}
	line := sink.lines[0]
	if !strings.HasPrefix(line, "3 [") {
		t.Fatalf("expected line to start with tid \"3 [\", got %q", line)
	}
	if !strings.Contains(line, "] (error) transfer failed: disk full") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestParseLevelUnknownFallsBackToTrace(t *testing.T) {
	lvl, ok := ParseLevel("verbose")
	if ok {
		t.Fatalf("expected ok=false for unknown level")
	}
	if lvl != Trace {
		t.Fatalf("expected fallback level Trace, got %v", lvl)
	}
}

func TestParseLevelKnownValues(t *testing.T) {
	for _, name := range []string{"trace", "debug", "info", "warning", "error", "critical", "off"} {
		lvl, ok := ParseLevel(strings.ToUpper(name))
		if !ok {
			t.Fatalf("expected %q to parse", name)
		}
		if lvl.String() != name {
			t.Fatalf("round-trip mismatch for %q: got %q", name, lvl.String())
		}
	}
}
