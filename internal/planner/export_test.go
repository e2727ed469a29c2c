package planner

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, buildSchedule()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"Date,Subject,Hours",
		"2026-06-01,Math,1.0",
		"2026-06-01,Science,1.0",
		"2026-06-02,Math,0.5",
		"2026-06-03,Review Math,0.5",
		"2026-06-03,Review Science,0.5",
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteCSVEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, NewSchedule()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Date,Subject,Hours" {
		t.Errorf("empty schedule should export only the header, got %q", got)
	}
}
