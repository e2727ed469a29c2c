package planner

import (
	"sync"
	"time"

	"github.com/study-planner/backend/internal/models"
)

// Session holds one user's planner state for the lifetime of the process.
// The generated schedule and the input fields are immutable once stored;
// progress marks and the favorites list are the only mutable pieces and are
// touched exclusively through SessionStore methods.
type Session struct {
	Name        string
	Subjects    []Subject
	DailyHours  float64
	ExamDate    time.Time
	TotalDays   int
	Plan        *Schedule
	GeneratedAt time.Time

	progress  map[string]bool
	favorites []models.Resource
}

// SessionStore keeps per-user sessions in memory. Generating a new plan
// replaces the user's session wholesale; nothing here is written to the
// database.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Put installs a fresh session for the user, resetting progress and
// favorites from any prior session.
func (st *SessionStore) Put(userID int64, s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s.progress = make(map[string]bool)
	s.favorites = nil
	st.sessions[userID] = s
}

// Get returns the user's session. The returned pointer's exported fields are
// read-only after Put, so sharing it across requests is safe.
func (st *SessionStore) Get(userID int64) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	return s, ok
}

func progressKey(date, label string) string {
	return date + "|" + label
}

// SetTaskDone records a checkbox state for the task with the given label on
// the given date. ok is false when the user has no session.
func (st *SessionStore) SetTaskDone(userID int64, date, label string, done bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok {
		return false
	}
	s.progress[progressKey(date, label)] = done
	return true
}

// ProgressSnapshot returns a copy of the user's checkbox state.
func (st *SessionStore) ProgressSnapshot(userID int64) (map[string]bool, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	if !ok {
		return nil, false
	}
	snapshot := make(map[string]bool, len(s.progress))
	for k, v := range s.progress {
		snapshot[k] = v
	}
	return snapshot, true
}

// SaveFavorite appends a resource to the session's favorites unless an equal
// record is already present. added reports whether it was newly saved; ok is
// false when the user has no session.
func (st *SessionStore) SaveFavorite(userID int64, r models.Resource) (added, ok bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, found := st.sessions[userID]
	if !found {
		return false, false
	}
	for _, existing := range s.favorites {
		if existing == r {
			return false, true
		}
	}
	s.favorites = append(s.favorites, r)
	return true, true
}

// Favorites returns a copy of the user's saved resources in save order.
func (st *SessionStore) Favorites(userID int64) ([]models.Resource, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	if !ok {
		return nil, false
	}
	out := make([]models.Resource, len(s.favorites))
	copy(out, s.favorites)
	return out, true
}
