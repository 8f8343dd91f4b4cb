package adapthttp

import (
	"fmt"
	"net/http"
)

// handleAITest is a diagnostics endpoint that exercises the model gateway
// with a raw prompt and reports failures verbatim.
func (s *Server) handleAITest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
			"error": "Please use POST method with a prompt in the request body",
		})
		return
	}

	if _, ok := s.userID(w, r); !ok {
		return
	}

	if !s.ai.Configured() {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "GROQ_API_KEY is not configured",
		})
		return
	}

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Prompt == "" {
		req.Prompt = "Hello, how can you help me with my mental health?"
	}

	text, err := s.ai.Complete(r.Context(), req.Prompt, "", 500)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   fmt.Sprintf("Failed to test AI connection: %v", err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": text,
	})
}
