package planner

import (
	"math"
	"sort"
	"time"
)

// Subject is one entry in the user's ordered subject list, with its 1-5
// difficulty rating. The slice order drives per-day allocation order.
type Subject struct {
	Name       string
	Difficulty int
}

// Task is a single scheduled block: a study session labeled with the subject
// name, or a follow-up review labeled "Review <subject>".
type Task struct {
	Label string
	Hours float64
}

// Schedule maps calendar days to their ordered task lists. Days with no
// tasks are simply absent. All construction goes through Add, so per-day
// ordering is exactly insertion order.
type Schedule struct {
	days map[time.Time][]Task
}

func NewSchedule() *Schedule {
	return &Schedule{days: make(map[time.Time][]Task)}
}

// Add appends a task to the given day, creating the day's list if needed.
func (s *Schedule) Add(day time.Time, t Task) {
	day = Midnight(day)
	s.days[day] = append(s.days[day], t)
}

// Tasks returns the ordered task list for a day, or nil if the day has none.
func (s *Schedule) Tasks(day time.Time) []Task {
	return s.days[Midnight(day)]
}

// Days returns every day with at least one task, ascending.
func (s *Schedule) Days() []time.Time {
	days := make([]time.Time, 0, len(s.days))
	for d := range s.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Empty reports whether no day has any task.
func (s *Schedule) Empty() bool {
	return len(s.days) == 0
}

// Midnight normalizes a timestamp to its civil date (UTC midnight), which is
// what Schedule uses as map keys.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Generate builds the day-by-day study plan.
//
// The total hour pool (days until the exam times dailyHours) is split across
// subjects proportionally to difficulty. Each day then walks the subjects in
// order, allocating at most one hour per subject per day until either the
// subject's owed balance or the day's budget runs out; a subject skipped
// when the day fills up resumes on a later day. Every allocation schedules a
// half-length review task two days later, past the exam horizon if need be.
//
// Generate is pure: given the same inputs and the same reference date it
// always returns the same schedule, and it never fails. A non-positive day
// count yields an empty schedule and a zero difficulty sum falls back to
// weight 1. Callers validate inputs beforehand.
func Generate(subjects []Subject, dailyHours float64, examDate, today time.Time) *Schedule {
	start := Midnight(today)
	end := Midnight(examDate)
	totalDays := int(end.Sub(start).Hours() / 24)

	schedule := NewSchedule()
	if totalDays <= 0 {
		return schedule
	}

	totalWeight := 0
	for _, sub := range subjects {
		totalWeight += sub.Difficulty
	}
	if totalWeight == 0 {
		totalWeight = 1
	}

	totalHours := float64(totalDays) * dailyHours
	owed := make([]float64, len(subjects))
	for i, sub := range subjects {
		owed[i] = round1(float64(sub.Difficulty) / float64(totalWeight) * totalHours)
	}

	for day := 0; day < totalDays; day++ {
		date := start.AddDate(0, 0, day)
		reviewDate := start.AddDate(0, 0, day+2)
		remaining := dailyHours

		for i, sub := range subjects {
			if owed[i] <= 0 {
				continue
			}
			allocated := round1(math.Min(1.0, math.Min(owed[i], remaining)))
			if allocated <= 0 {
				continue
			}
			owed[i] = round1(owed[i] - allocated)
			remaining = round1(remaining - allocated)

			schedule.Add(date, Task{Label: sub.Name, Hours: allocated})
			// Spaced repetition: half the session two days later.
			schedule.Add(reviewDate, Task{Label: "Review " + sub.Name, Hours: round1(allocated / 2)})
		}
	}

	return schedule
}
