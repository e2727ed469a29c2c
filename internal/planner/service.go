package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/study-planner/backend/internal/advisor"
	"github.com/study-planner/backend/internal/models"
	"github.com/study-planner/backend/internal/resources"
)

// ErrNoSession is returned by plan-dependent operations before any plan has
// been generated for the user.
var ErrNoSession = errors.New("no study plan for this session")

const reminderCount = 3

type Service struct {
	sessions  *SessionStore
	studyLog  *LogStore
	resources *resources.Client
	advisor   *advisor.Advisor
	now       func() time.Time
}

// NewService wires the planner. studyLog, res and adv may be nil; the
// corresponding features degrade rather than fail.
func NewService(sessions *SessionStore, studyLog *LogStore, res *resources.Client, adv *advisor.Advisor) *Service {
	return &Service{
		sessions:  sessions,
		studyLog:  studyLog,
		resources: res,
		advisor:   adv,
		now:       time.Now,
	}
}

// ParseSubjects splits a comma-separated subject list, trimming whitespace
// and dropping empty entries.
func ParseSubjects(text string) []string {
	var subjects []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			subjects = append(subjects, part)
		}
	}
	return subjects
}

// ClampDifficulty clamps a rating to the 1-5 scale.
func ClampDifficulty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

// ClampDailyHours clamps a daily budget to the 1-10 range.
func ClampDailyHours(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// GeneratePlan validates and clamps the raw inputs, runs the scheduler, and
// installs the result as the user's session.
func (s *Service) GeneratePlan(userID int64, req models.GeneratePlanRequest) (*models.PlanResponse, error) {
	names := ParseSubjects(req.Subjects)
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one subject is required")
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return nil, fmt.Errorf("exam_date must be in YYYY-MM-DD format")
	}

	dailyHours := req.DailyHours
	if dailyHours == 0 {
		dailyHours = 3 // slider default
	}
	budget := float64(ClampDailyHours(dailyHours))

	subjects := make([]Subject, len(names))
	for i, name := range names {
		rating := 3 // slider default
		if v, ok := req.Difficulty[name]; ok {
			rating = ClampDifficulty(v)
		}
		subjects[i] = Subject{Name: name, Difficulty: rating}
	}

	today := s.now()
	plan := Generate(subjects, budget, examDate, today)

	session := &Session{
		Name:        strings.TrimSpace(req.Name),
		Subjects:    subjects,
		DailyHours:  budget,
		ExamDate:    Midnight(examDate),
		TotalDays:   int(Midnight(examDate).Sub(Midnight(today)).Hours() / 24),
		Plan:        plan,
		GeneratedAt: today,
	}
	s.sessions.Put(userID, session)

	return planResponse(session), nil
}

// CurrentPlan returns the session's plan.
func (s *Service) CurrentPlan(userID int64) (*models.PlanResponse, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}
	return planResponse(session), nil
}

// PlanText renders the session's plan as grouped-by-date text.
func (s *Service) PlanText(userID int64) (string, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return "", ErrNoSession
	}
	return FormatSchedule(session.Plan), nil
}

// ExportCSV writes the session's plan as Date,Subject,Hours rows.
func (s *Service) ExportCSV(userID int64, w io.Writer) error {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return ErrNoSession
	}
	return WriteCSV(w, session.Plan)
}

// Summary builds the per-subject chart series and the completion percent
// from checked-off tasks.
func (s *Service) Summary(userID int64) (*models.SummaryResponse, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}
	progress, _ := s.sessions.ProgressSnapshot(userID)

	var doneHours float64
	for _, day := range session.Plan.Days() {
		date := day.Format("2006-01-02")
		for _, t := range session.Plan.Tasks(day) {
			if progress[progressKey(date, t.Label)] {
				doneHours += t.Hours
			}
		}
	}

	total := TotalHours(session.Plan)
	return &models.SummaryResponse{
		Chart:             SubjectTotals(session.Plan),
		TotalHours:        total,
		CompletionPercent: CompletionPercent(doneHours, total),
	}, nil
}

// Reminders returns the next few upcoming plan days.
func (s *Service) Reminders(userID int64) ([]models.PlanDay, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}
	reminders := Reminders(session.Plan, s.now(), reminderCount)
	if reminders == nil {
		reminders = []models.PlanDay{}
	}
	return reminders, nil
}

// TodayTasks returns today's tasks with their checkbox state.
func (s *Service) TodayTasks(userID int64) (*models.TodayResponse, error) {
	return s.tasksFor(userID, Midnight(s.now()))
}

// SetProgress toggles a task checkbox. An empty date means today. The task
// must exist on that date.
func (s *Service) SetProgress(userID int64, req models.ProgressRequest) (*models.TodayResponse, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}

	day := Midnight(s.now())
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("date must be in YYYY-MM-DD format")
		}
		day = Midnight(parsed)
	}

	found := false
	for _, t := range session.Plan.Tasks(day) {
		if t.Label == req.Label {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("no task %q on %s", req.Label, day.Format("2006-01-02"))
	}

	s.sessions.SetTaskDone(userID, day.Format("2006-01-02"), req.Label, req.Done)
	return s.tasksFor(userID, day)
}

func (s *Service) tasksFor(userID int64, day time.Time) (*models.TodayResponse, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}
	progress, _ := s.sessions.ProgressSnapshot(userID)

	date := day.Format("2006-01-02")
	resp := &models.TodayResponse{Date: date, Tasks: []models.TodayTask{}}
	for _, t := range session.Plan.Tasks(day) {
		resp.Tasks = append(resp.Tasks, models.TodayTask{
			Label: t.Label,
			Hours: t.Hours,
			Done:  progress[progressKey(date, t.Label)],
		})
	}
	return resp, nil
}

// RecordProductivity computes today's actual-vs-planned percent and appends
// a study-log row. Log persistence failures are non-fatal.
func (s *Service) RecordProductivity(userID int64, actual float64) (*models.ProductivityResponse, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}
	if actual < 0 {
		return nil, fmt.Errorf("actual_hours must not be negative")
	}

	if s.studyLog != nil {
		if err := s.studyLog.RecordEntry(userID, Midnight(s.now()), actual, session.DailyHours); err != nil {
			log.Printf("[planner] failed to record study log for user %d: %v", userID, err)
		}
	}

	return &models.ProductivityResponse{
		ActualHours: actual,
		DailyHours:  session.DailyHours,
		Percent:     ProductivityPercent(actual, session.DailyHours),
	}, nil
}

// ProductivityHistory returns the persisted study-log rows, newest first.
func (s *Service) ProductivityHistory(userID int64, limit int) ([]models.StudyLogEntry, error) {
	if s.studyLog == nil {
		return []models.StudyLogEntry{}, nil
	}
	entries, err := s.studyLog.ListEntries(userID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.StudyLogEntry{}
	}
	return entries, nil
}

// Resources looks up learning resources for every session subject in order.
// Playlist lookup failures become per-subject warnings, never errors.
func (s *Service) Resources(ctx context.Context, userID int64) ([]models.ResourceBundle, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoSession
	}

	bundles := make([]models.ResourceBundle, 0, len(session.Subjects))
	for _, sub := range session.Subjects {
		bundle := models.ResourceBundle{
			Subject:  sub.Name,
			Articles: resources.ArticleLinks(sub.Name),
		}
		if s.resources != nil && s.resources.Configured() {
			playlist, err := s.resources.SearchPlaylist(ctx, sub.Name)
			if err != nil {
				log.Printf("[planner] playlist lookup failed for %q: %v", sub.Name, err)
				bundle.Warning = "No YouTube playlist found for " + sub.Name
			} else {
				bundle.Playlist = playlist
			}
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}

// SaveFavorite appends a resource to the session's favorites, skipping
// duplicates.
func (s *Service) SaveFavorite(userID int64, r models.Resource) (*models.SaveFavoriteResponse, error) {
	added, ok := s.sessions.SaveFavorite(userID, r)
	if !ok {
		return nil, ErrNoSession
	}
	favorites, _ := s.sessions.Favorites(userID)
	return &models.SaveFavoriteResponse{Added: added, Favorites: favorites}, nil
}

// Favorites returns the session's saved resources in save order.
func (s *Service) Favorites(userID int64) ([]models.Resource, error) {
	favorites, ok := s.sessions.Favorites(userID)
	if !ok {
		return nil, ErrNoSession
	}
	if favorites == nil {
		favorites = []models.Resource{}
	}
	return favorites, nil
}

// Tips returns a tip from the built-in pool plus, when a model is configured
// and a session exists, a personalized list. Model failures degrade to the
// pool tip alone.
func (s *Service) Tips(ctx context.Context, userID int64) *models.TipsResponse {
	resp := &models.TipsResponse{Tip: advisor.RandomTip()}
	if s.advisor == nil || !s.advisor.Enabled() {
		return resp
	}

	session, ok := s.sessions.Get(userID)
	if !ok {
		return resp
	}

	names := make([]string, len(session.Subjects))
	for i, sub := range session.Subjects {
		names[i] = sub.Name
	}
	daysLeft := int(session.ExamDate.Sub(Midnight(s.now())).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}

	tips, err := s.advisor.PersonalTips(ctx, names, session.DailyHours, daysLeft)
	if err != nil {
		log.Printf("[planner] personalized tips unavailable: %v", err)
		return resp
	}
	resp.PersonalTips = tips
	return resp
}

func planResponse(session *Session) *models.PlanResponse {
	names := make([]string, len(session.Subjects))
	for i, sub := range session.Subjects {
		names[i] = sub.Name
	}
	return &models.PlanResponse{
		Name:       session.Name,
		Subjects:   names,
		DailyHours: session.DailyHours,
		ExamDate:   session.ExamDate.Format("2006-01-02"),
		TotalDays:  session.TotalDays,
		TotalHours: TotalHours(session.Plan),
		Days:       planDays(session.Plan),
	}
}
