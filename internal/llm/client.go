// Package llm talks to a Groq-hosted chat model over the OpenAI-compatible
// completions API. Every public method degrades to a usable string or
// playlist instead of returning an error: the product keeps working without
// an API key, it just answers with canned text.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"time"

	"mindwell/internal/domain"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama3-70b-8192"

	requestTimeout = 30 * time.Second
)

const personaPrompt = `You are a compassionate mental health companion named Mindi.
Your goal is to provide supportive, empathetic responses to help users manage their mental wellbeing.
You should be warm, understanding, and never judgmental.
Provide practical advice when appropriate, but focus on emotional support.
Keep responses concise (under 150 words) but meaningful.`

const musicSystemPrompt = "You are a music recommendation assistant. Respond only with valid JSON arrays containing song recommendations."

// fallbackPlaylist is served whenever suggestions cannot be generated. It is
// deliberately calming and mood-invariant.
var fallbackPlaylist = []domain.MusicSuggestion{
	{TrackName: "Weightless", ArtistName: "Marconi Union", AlbumName: "Weightless"},
	{TrackName: "Electra", ArtistName: "Airstream", AlbumName: "Electra"},
	{TrackName: "Watermark", ArtistName: "Enya", AlbumName: "Watermark"},
}

// jsonArrayRe grabs the outermost JSON array from a completion that may wrap
// it in prose despite the system prompt.
var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// Client is a minimal Groq chat-completions client.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

var _ domain.ResponseGateway = (*Client)(nil)

// New creates a Client. An empty apiKey yields an unconfigured client whose
// methods return the canned fallbacks. An empty model selects the default.
func New(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// NewFromEnv reads GROQ_API_KEY and GROQ_MODEL.
func NewFromEnv() *Client {
	return New(os.Getenv("GROQ_API_KEY"), os.Getenv("GROQ_MODEL"))
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ChatReply answers a companion chat message. Failures come back as
// human-readable text rather than errors.
func (c *Client) ChatReply(ctx context.Context, message string) string {
	if !c.Configured() {
		log.Println("llm: GROQ_API_KEY is not configured")
		return "AI service is not properly configured. Please check your environment variables."
	}
	text, err := c.complete(ctx, message, personaPrompt, 500)
	if err != nil {
		log.Printf("llm: chat completion failed: %v", err)
		return fmt.Sprintf("I'm having trouble connecting right now. Error: %v", err)
	}
	return text
}

// JournalPrompt produces a journaling prompt for the given mood label.
func (c *Client) JournalPrompt(ctx context.Context, mood string) string {
	if !c.Configured() {
		log.Println("llm: GROQ_API_KEY is not configured")
		return "What's on your mind today? (AI service not configured)"
	}
	if mood == "" {
		mood = "reflective"
	}
	prompt := fmt.Sprintf("Generate a thoughtful journaling prompt for someone who is feeling %s today. The prompt should encourage self-reflection and emotional processing.", mood)
	text, err := c.complete(ctx, prompt, "", 100)
	if err != nil {
		log.Printf("llm: journal prompt failed: %v", err)
		return fmt.Sprintf("What emotions are you experiencing today? (Error: %v)", err)
	}
	return text
}

// MusicSuggestions asks the model for three tracks matching the mood. Any
// failure, including unparseable output, yields the static fallback playlist.
func (c *Client) MusicSuggestions(ctx context.Context, mood string) []domain.MusicSuggestion {
	if !c.Configured() {
		log.Println("llm: GROQ_API_KEY is not configured")
		return fallbackPlaylist
	}
	prompt := fmt.Sprintf("Suggest 3 songs that would be good for someone feeling %s. Format the response as a JSON array with objects containing track_name, artist_name, and album_name properties. Do not include any explanatory text.", mood)
	text, err := c.complete(ctx, prompt, musicSystemPrompt, 300)
	if err != nil {
		log.Printf("llm: music suggestions failed: %v", err)
		return fallbackPlaylist
	}

	raw := jsonArrayRe.FindString(text)
	if raw == "" {
		log.Printf("llm: no JSON array in music response: %q", text)
		return fallbackPlaylist
	}
	var suggestions []domain.MusicSuggestion
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		log.Printf("llm: cannot parse music response: %v", err)
		return fallbackPlaylist
	}
	if len(suggestions) == 0 {
		return fallbackPlaylist
	}
	return suggestions
}

// Complete runs a raw prompt through the model. Unlike the companion
// methods it surfaces failures to the caller, which the diagnostics
// endpoint reports verbatim.
func (c *Client) Complete(ctx context.Context, prompt, system string, maxTokens int) (string, error) {
	return c.complete(ctx, prompt, system, maxTokens)
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model     string       `json:"model"`
	Messages  []apiMessage `json:"messages"`
	MaxTokens int          `json:"max_tokens,omitempty"`
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) complete(ctx context.Context, prompt, system string, maxTokens int) (string, error) {
	reqBody := apiRequest{Model: c.model, MaxTokens: maxTokens}
	if system != "" {
		reqBody.Messages = append(reqBody.Messages, apiMessage{Role: "system", Content: system})
	}
	reqBody.Messages = append(reqBody.Messages, apiMessage{Role: "user", Content: prompt})

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling completion API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("completion API: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("completion API: unexpected status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion API: empty choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
