package planner

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/study-planner/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all planner endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/plans", h.GeneratePlan).Methods("POST")
	protected.HandleFunc("/plans/current", h.GetCurrentPlan).Methods("GET")
	protected.HandleFunc("/plans/current/export", h.ExportPlan).Methods("GET")
	protected.HandleFunc("/plans/current/summary", h.GetSummary).Methods("GET")
	protected.HandleFunc("/plans/current/reminders", h.GetReminders).Methods("GET")
	protected.HandleFunc("/plans/current/today", h.GetToday).Methods("GET")
	protected.HandleFunc("/plans/current/progress", h.UpdateProgress).Methods("POST")
	protected.HandleFunc("/plans/current/productivity", h.RecordProductivity).Methods("POST")
	protected.HandleFunc("/plans/current/productivity/history", h.GetProductivityHistory).Methods("GET")

	protected.HandleFunc("/resources", h.GetResources).Methods("GET")
	protected.HandleFunc("/favorites", h.SaveFavorite).Methods("POST")
	protected.HandleFunc("/favorites", h.GetFavorites).Methods("GET")
	protected.HandleFunc("/tips", h.GetTips).Methods("GET")
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.GeneratePlan(userID, req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetCurrentPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	// ?format=text returns the grouped-by-date plain text rendering.
	if r.URL.Query().Get("format") == "text" {
		text, err := h.service.PlanText(userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(text))
		return
	}

	resp, err := h.service.CurrentPlan(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ExportPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="study_plan.csv"`)
	if err := h.service.ExportCSV(userID, w); err != nil {
		if errors.Is(err, ErrNoSession) {
			w.Header().Del("Content-Disposition")
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No study plan generated yet"})
			return
		}
		log.Printf("[handler] ExportPlan error: %v", err)
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.service.Summary(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetReminders(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	reminders, err := h.service.Reminders(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reminders)
}

func (h *Handler) GetToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.service.TodayTasks(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "label is required"})
		return
	}

	resp, err := h.service.SetProgress(userID, req)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) RecordProductivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.ProductivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.RecordProductivity(userID, req.ActualHours)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetProductivityHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	limit := intQueryParam(r.URL.Query(), "limit", 30)
	entries, err := h.service.ProductivityHistory(userID, limit)
	if err != nil {
		log.Printf("[handler] GetProductivityHistory error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get productivity history"})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	bundles, err := h.service.Resources(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundles)
}

func (h *Handler) SaveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.Resource
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Type == "" || req.Subject == "" || req.Title == "" || req.Link == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "type, subject, title, and link are required"})
		return
	}

	resp, err := h.service.SaveFavorite(userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	favorites, err := h.service.Favorites(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

func (h *Handler) GetTips(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	writeJSON(w, http.StatusOK, h.service.Tips(r.Context(), userID))
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNoSession) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No study plan generated yet"})
		return
	}
	log.Printf("[handler] service error: %v", err)
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, fallback int) int {
	if v := query.Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
