package planner

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes the schedule as Date,Subject,Hours rows, days ascending,
// tasks in their per-day order.
func WriteCSV(w io.Writer, s *Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Subject", "Hours"}); err != nil {
		return err
	}
	for _, day := range s.Days() {
		date := day.Format("2006-01-02")
		for _, t := range s.Tasks(day) {
			row := []string{date, t.Label, strconv.FormatFloat(t.Hours, 'f', 1, 64)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
