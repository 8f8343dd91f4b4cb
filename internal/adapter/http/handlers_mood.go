package adapthttp

import (
	"net/http"
	"time"
)

func (s *Server) handleMood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	var req struct {
		Score int    `json:"score"`
		Notes string `json:"notes"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entry, err := s.mood.Record(r.Context(), userID, req.Score, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"entry": entry})
}

func (s *Server) handleMoodRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	limit := intQuery(r, "limit", 7)
	entries, err := s.mood.ListRecent(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (s *Server) handleMoodHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	days := intQuery(r, "days", 30)
	since := time.Now().AddDate(0, 0, -days)
	entries, err := s.mood.ListSince(r.Context(), userID, since)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries, "days": days})
}

func (s *Server) handleMoodInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	insights, err := s.mood.Insights(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, insights)
}
