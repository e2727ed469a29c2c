package models

type GeneratePlanRequest struct {
	Name       string         `json:"name"`
	Subjects   string         `json:"subjects"`
	Difficulty map[string]int `json:"difficulty"`
	DailyHours int            `json:"daily_hours"`
	ExamDate   string         `json:"exam_date"`
}

type PlanTask struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

type PlanDay struct {
	Date    string     `json:"date"`
	Weekday string     `json:"weekday"`
	Tasks   []PlanTask `json:"tasks"`
}

type PlanResponse struct {
	Name       string    `json:"name,omitempty"`
	Subjects   []string  `json:"subjects"`
	DailyHours float64   `json:"daily_hours"`
	ExamDate   string    `json:"exam_date"`
	TotalDays  int       `json:"total_days"`
	TotalHours float64   `json:"total_hours"`
	Days       []PlanDay `json:"days"`
}

// SubjectHours is one entry of the per-subject bar-chart series. Review
// tasks chart under their own "Review X" label, matching the CSV export.
type SubjectHours struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

type SummaryResponse struct {
	Chart             []SubjectHours `json:"chart"`
	TotalHours        float64        `json:"total_hours"`
	CompletionPercent int            `json:"completion_percent"`
}

type TodayTask struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
	Done  bool    `json:"done"`
}

type TodayResponse struct {
	Date  string      `json:"date"`
	Tasks []TodayTask `json:"tasks"`
}

type ProgressRequest struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type ProductivityRequest struct {
	ActualHours float64 `json:"actual_hours"`
}

type ProductivityResponse struct {
	ActualHours float64 `json:"actual_hours"`
	DailyHours  float64 `json:"daily_hours"`
	Percent     int     `json:"percent"`
}

type StudyLogEntry struct {
	Date         string  `json:"date"`
	PlannedHours float64 `json:"planned_hours"`
	ActualHours  float64 `json:"actual_hours"`
	Percent      int     `json:"percent"`
}

type TipsResponse struct {
	Tip          string   `json:"tip"`
	PersonalTips []string `json:"personal_tips,omitempty"`
}
