package planner

import (
	"strings"
	"testing"
	"time"
)

func buildSchedule() *Schedule {
	s := NewSchedule()
	s.Add(day(2026, time.June, 1), Task{Label: "Math", Hours: 1.0})
	s.Add(day(2026, time.June, 1), Task{Label: "Science", Hours: 1.0})
	s.Add(day(2026, time.June, 2), Task{Label: "Math", Hours: 0.5})
	s.Add(day(2026, time.June, 3), Task{Label: "Review Math", Hours: 0.5})
	s.Add(day(2026, time.June, 3), Task{Label: "Review Science", Hours: 0.5})
	return s
}

func TestSubjectTotals(t *testing.T) {
	totals := SubjectTotals(buildSchedule())

	wantOrder := []string{"Math", "Science", "Review Math", "Review Science"}
	wantHours := []float64{1.5, 1.0, 0.5, 0.5}

	if len(totals) != len(wantOrder) {
		t.Fatalf("got %d series, want %d: %+v", len(totals), len(wantOrder), totals)
	}
	for i := range wantOrder {
		if totals[i].Subject != wantOrder[i] {
			t.Errorf("series %d = %q, want %q (first-appearance order)", i, totals[i].Subject, wantOrder[i])
		}
		if totals[i].Hours != wantHours[i] {
			t.Errorf("series %q hours = %.1f, want %.1f", totals[i].Subject, totals[i].Hours, wantHours[i])
		}
	}
}

func TestTotalHours(t *testing.T) {
	if got := TotalHours(buildSchedule()); got != 3.5 {
		t.Errorf("TotalHours = %.1f, want 3.5", got)
	}
	if got := TotalHours(NewSchedule()); got != 0 {
		t.Errorf("TotalHours of empty schedule = %.1f, want 0", got)
	}
}

func TestRemindersFromSchedule(t *testing.T) {
	s := buildSchedule()

	// From the middle: earlier days are skipped.
	got := Reminders(s, day(2026, time.June, 2), 3)
	if len(got) != 2 {
		t.Fatalf("got %d reminders, want 2", len(got))
	}
	if got[0].Date != "2026-06-02" || got[1].Date != "2026-06-03" {
		t.Errorf("reminder dates = %s, %s", got[0].Date, got[1].Date)
	}

	// From before the plan: capped at n.
	got = Reminders(s, day(2026, time.May, 1), 2)
	if len(got) != 2 {
		t.Fatalf("got %d reminders, want 2", len(got))
	}
	if got[0].Date != "2026-06-01" {
		t.Errorf("first reminder = %s, want 2026-06-01", got[0].Date)
	}

	// Past the plan: nothing upcoming.
	if got = Reminders(s, day(2026, time.July, 1), 3); len(got) != 0 {
		t.Errorf("got %d reminders after the plan ended, want 0", len(got))
	}
}

func TestProductivityPercent(t *testing.T) {
	tests := []struct {
		actual    float64
		available float64
		want      int
	}{
		{0, 3, 0},
		{2, 3, 67},
		{3, 3, 100},
		{4.5, 3, 150},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := ProductivityPercent(tt.actual, tt.available); got != tt.want {
			t.Errorf("ProductivityPercent(%.1f, %.1f) = %d, want %d", tt.actual, tt.available, got, tt.want)
		}
	}
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		done  float64
		total float64
		want  int
	}{
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{15, 10, 100}, // capped
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := CompletionPercent(tt.done, tt.total); got != tt.want {
			t.Errorf("CompletionPercent(%.1f, %.1f) = %d, want %d", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestFormatSchedule(t *testing.T) {
	text := FormatSchedule(buildSchedule())

	if !strings.Contains(text, "Monday, 01 June 2026") {
		t.Error("missing dated heading for June 1")
	}
	if !strings.Contains(text, "  - Math: 1.0 hour(s)") {
		t.Error("missing task line for Math")
	}
	if !strings.Contains(text, "  - Review Science: 0.5 hour(s)") {
		t.Error("missing task line for Review Science")
	}

	// Days render in ascending order.
	if strings.Index(text, "01 June") > strings.Index(text, "03 June") {
		t.Error("days not rendered in ascending order")
	}
}
