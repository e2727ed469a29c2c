package planner

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/study-planner/backend/internal/models"
)

// SubjectTotals sums hours per task label across the whole schedule, in
// first-appearance order walking days ascending. This is the bar-chart
// series: review tasks count under their own "Review X" label.
func SubjectTotals(s *Schedule) []models.SubjectHours {
	index := make(map[string]int)
	var totals []models.SubjectHours
	for _, day := range s.Days() {
		for _, t := range s.Tasks(day) {
			i, ok := index[t.Label]
			if !ok {
				i = len(totals)
				index[t.Label] = i
				totals = append(totals, models.SubjectHours{Subject: t.Label})
			}
			totals[i].Hours = round1(totals[i].Hours + t.Hours)
		}
	}
	return totals
}

// TotalHours sums every task in the schedule, reviews included.
func TotalHours(s *Schedule) float64 {
	var total float64
	for _, day := range s.Days() {
		for _, t := range s.Tasks(day) {
			total += t.Hours
		}
	}
	return round1(total)
}

// Reminders returns up to n upcoming days (today or later) that have tasks.
func Reminders(s *Schedule, today time.Time, n int) []models.PlanDay {
	start := Midnight(today)
	var upcoming []models.PlanDay
	for _, day := range s.Days() {
		if day.Before(start) {
			continue
		}
		upcoming = append(upcoming, planDay(s, day))
		if len(upcoming) == n {
			break
		}
	}
	return upcoming
}

// ProductivityPercent is the actual-vs-planned ratio as a whole percent.
func ProductivityPercent(actual, available float64) int {
	if available <= 0 {
		return 0
	}
	return int(math.Round(actual / available * 100))
}

// CompletionPercent reports how much of the plan's hour total has been
// checked off, capped at 100.
func CompletionPercent(doneHours, totalHours float64) int {
	if totalHours <= 0 {
		return 0
	}
	percent := int(math.Round(doneHours / totalHours * 100))
	if percent > 100 {
		percent = 100
	}
	return percent
}

// FormatSchedule renders the plan as grouped-by-date text, one dated heading
// per day followed by its task lines.
func FormatSchedule(s *Schedule) string {
	var b strings.Builder
	for _, day := range s.Days() {
		fmt.Fprintf(&b, "%s\n", day.Format("Monday, 02 January 2006"))
		for _, t := range s.Tasks(day) {
			fmt.Fprintf(&b, "  - %s: %.1f hour(s)\n", t.Label, t.Hours)
		}
	}
	return b.String()
}

func planDay(s *Schedule, day time.Time) models.PlanDay {
	pd := models.PlanDay{
		Date:    day.Format("2006-01-02"),
		Weekday: day.Weekday().String(),
	}
	for _, t := range s.Tasks(day) {
		pd.Tasks = append(pd.Tasks, models.PlanTask{Label: t.Label, Hours: t.Hours})
	}
	return pd
}

func planDays(s *Schedule) []models.PlanDay {
	days := s.Days()
	out := make([]models.PlanDay, 0, len(days))
	for _, day := range days {
		out = append(out, planDay(s, day))
	}
	return out
}
