package adapthttp

import (
	"errors"
	"net/http"
)

func (s *Server) handleMusic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	recs, mood, err := s.music.Current(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": recs, "mood": mood})
}

func (s *Server) handleMusicRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	var req struct {
		Mood string `json:"mood"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// An omitted mood falls back to the latest logged one.
	mood := req.Mood
	if mood == "" {
		latest, err := s.mood.ListRecent(r.Context(), userID, 1)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if len(latest) == 0 {
			writeError(w, http.StatusBadRequest, errors.New("no mood logged yet"))
			return
		}
		mood = latest[0].Label
	}

	recs, err := s.music.Refresh(r.Context(), userID, mood)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": recs, "mood": mood})
}
