package adapthttp

import (
	"net/http"

	"mindwell/internal/app"
	"mindwell/internal/domain"
	"mindwell/internal/llm"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the optional SSO provider wiring.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	profile *app.ProfileService
	mood    *app.MoodService
	journal *app.JournalService
	chat    *app.ChatService
	music   *app.MusicService
	authSvc *app.AuthService
	ai      *llm.Client

	oidcConfig *OIDCConfig
	webDir     string

	// disableAuth short-circuits the auth middleware with a fixed test
	// identity.
	disableAuth bool
	testUser    *domain.User
}

// New creates a Server wired to the given application services.
func New(profile *app.ProfileService, mood *app.MoodService, journal *app.JournalService, chat *app.ChatService, music *app.MusicService, authSvc *app.AuthService, ai *llm.Client, webDir string) *Server {
	return &Server{
		profile:    profile,
		mood:       mood,
		journal:    journal,
		chat:       chat,
		music:      music,
		authSvc:    authSvc,
		ai:         ai,
		oidcConfig: &OIDCConfig{},
		webDir:     webDir,
	}
}

// WithOIDC enables SSO login through the given provider configuration.
func (s *Server) WithOIDC(cfg *OIDCConfig) *Server {
	if cfg != nil {
		s.oidcConfig = cfg
	}
	return s
}

// WithoutAuth disables authentication, for tests.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	s.testUser = &domain.User{ID: "test-user", Email: "test@example.com"}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("/me", s.handleMe)

	protected.HandleFunc("/mood", s.handleMood)
	protected.HandleFunc("/mood/recent", s.handleMoodRecent)
	protected.HandleFunc("/mood/history", s.handleMoodHistory)
	protected.HandleFunc("/mood/insights", s.handleMoodInsights)

	protected.HandleFunc("/journal", s.handleJournal)
	protected.HandleFunc("/journal/prompt", s.handleJournalPrompt)
	protected.HandleFunc("/journal/", s.handleJournalItem)

	protected.HandleFunc("/chat/history", s.handleChatHistory)
	protected.HandleFunc("/chat/message", s.handleChatMessage)

	protected.HandleFunc("/music", s.handleMusic)
	protected.HandleFunc("/music/refresh", s.handleMusicRefresh)

	protected.HandleFunc("/ai/test", s.handleAITest)

	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return withNoCache(root)
}
