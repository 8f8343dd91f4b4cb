package domain

import "context"

// ResponseGateway is the port to the hosted language model. Implementations
// absorb missing configuration and transport failures into fallback
// content, so no method ever fails: callers validate output shape instead
// of handling errors.
type ResponseGateway interface {
	// ChatReply returns the assistant's reply to a user message.
	ChatReply(ctx context.Context, message string) string
	// JournalPrompt returns a journaling prompt for the given mood; an
	// empty mood means "reflective".
	JournalPrompt(ctx context.Context, mood string) string
	// MusicSuggestions returns song suggestions for a mood label, falling
	// back to a fixed playlist on any failure.
	MusicSuggestions(ctx context.Context, mood string) []MusicSuggestion
}
