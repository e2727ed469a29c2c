package planner

import (
	"testing"
	"time"

	"github.com/study-planner/backend/internal/models"
)

func newTestSession() *Session {
	return &Session{
		Subjects:   []Subject{{Name: "Math", Difficulty: 4}},
		DailyHours: 3,
		ExamDate:   day(2026, time.June, 10),
		Plan:       buildSchedule(),
	}
}

func TestSessionStorePutGet(t *testing.T) {
	st := NewSessionStore()

	if _, ok := st.Get(1); ok {
		t.Error("Get before Put should report no session")
	}

	st.Put(1, newTestSession())
	s, ok := st.Get(1)
	if !ok {
		t.Fatal("Get after Put should find the session")
	}
	if s.DailyHours != 3 {
		t.Errorf("DailyHours = %.1f, want 3", s.DailyHours)
	}

	// Sessions are per user.
	if _, ok := st.Get(2); ok {
		t.Error("user 2 should have no session")
	}
}

func TestSessionStoreFavorites(t *testing.T) {
	st := NewSessionStore()

	resource := models.Resource{Type: "Article", Subject: "Math", Title: "Introduction to Math", Link: "https://example.com/math"}

	if _, ok := st.SaveFavorite(1, resource); ok {
		t.Error("SaveFavorite without a session should report no session")
	}

	st.Put(1, newTestSession())

	added, ok := st.SaveFavorite(1, resource)
	if !ok || !added {
		t.Errorf("first save: added=%v ok=%v, want true/true", added, ok)
	}

	// Value-equal resources are not re-added.
	added, _ = st.SaveFavorite(1, resource)
	if added {
		t.Error("duplicate save should not add")
	}

	other := resource
	other.Subject = "Science"
	if added, _ = st.SaveFavorite(1, other); !added {
		t.Error("distinct resource should be added")
	}

	favorites, _ := st.Favorites(1)
	if len(favorites) != 2 {
		t.Fatalf("got %d favorites, want 2", len(favorites))
	}
	if favorites[0] != resource || favorites[1] != other {
		t.Errorf("favorites not in save order: %+v", favorites)
	}

	// Returned slice is a copy.
	favorites[0].Title = "mutated"
	fresh, _ := st.Favorites(1)
	if fresh[0].Title != "Introduction to Math" {
		t.Error("Favorites should return a copy")
	}
}

func TestSessionStoreProgress(t *testing.T) {
	st := NewSessionStore()

	if ok := st.SetTaskDone(1, "2026-06-01", "Math", true); ok {
		t.Error("SetTaskDone without a session should report no session")
	}

	st.Put(1, newTestSession())
	st.SetTaskDone(1, "2026-06-01", "Math", true)

	progress, ok := st.ProgressSnapshot(1)
	if !ok {
		t.Fatal("ProgressSnapshot should find the session")
	}
	if !progress[progressKey("2026-06-01", "Math")] {
		t.Error("Math on 2026-06-01 should be done")
	}

	// Snapshot is a copy.
	progress[progressKey("2026-06-01", "Science")] = true
	fresh, _ := st.ProgressSnapshot(1)
	if fresh[progressKey("2026-06-01", "Science")] {
		t.Error("mutating a snapshot must not affect the store")
	}

	st.SetTaskDone(1, "2026-06-01", "Math", false)
	fresh, _ = st.ProgressSnapshot(1)
	if fresh[progressKey("2026-06-01", "Math")] {
		t.Error("unchecking should clear the done flag")
	}
}

func TestSessionStorePutResetsState(t *testing.T) {
	st := NewSessionStore()
	st.Put(1, newTestSession())
	st.SetTaskDone(1, "2026-06-01", "Math", true)
	st.SaveFavorite(1, models.Resource{Type: "Article", Subject: "Math", Title: "t", Link: "l"})

	st.Put(1, newTestSession())

	favorites, _ := st.Favorites(1)
	if len(favorites) != 0 {
		t.Errorf("new session should reset favorites, got %d", len(favorites))
	}
	progress, _ := st.ProgressSnapshot(1)
	if len(progress) != 0 {
		t.Errorf("new session should reset progress, got %d entries", len(progress))
	}
}
