package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "mindwell/internal/adapter/http"
	"mindwell/internal/adapter/postgres"
	"mindwell/internal/app"
	"mindwell/internal/llm"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(connStr)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	sessionRepo := postgres.NewSessionRepo(db)

	ai := llm.NewFromEnv()
	if !ai.Configured() {
		log.Println("GROQ_API_KEY not set, AI features run on canned fallbacks")
	}

	profileSvc := app.NewProfileService(db)
	moodSvc := app.NewMoodService(db)
	journalSvc := app.NewJournalService(db, ai)
	chatSvc := app.NewChatService(db, ai)
	musicSvc := app.NewMusicService(db, db, ai)
	authSvc := app.NewAuthService(db, sessionRepo)

	srv := adapthttp.New(profileSvc, moodSvc, journalSvc, chatSvc, musicSvc, authSvc, ai, webDir)
	srv.WithOIDC(oidcFromEnv())

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// oidcFromEnv builds the SSO configuration when OIDC_ISSUER is set; SSO is
// off otherwise.
func oidcFromEnv() *adapthttp.OIDCConfig {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return nil
	}

	provider, err := oidc.NewProvider(context.Background(), issuer)
	if err != nil {
		log.Fatalf("oidc provider: %v", err)
	}

	return &adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  env("OIDC_REDIRECT_URL", "http://localhost:8080/api/auth/sso/callback"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
