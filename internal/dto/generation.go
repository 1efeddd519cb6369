package dto

import "strings"

const RoleUser = "user"

// GenerationRequest mirrors the Ollama chat payload and is the provider neutral request
// shape used by every text generator.
type GenerationRequest struct {
	Model    string        `json:"model"`
	Stream   bool          `json:"stream"`
	Messages []ChatMessage `json:"messages"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Prompt joins message contents, for providers that take a single text input.
func (r GenerationRequest) Prompt() string {
	parts := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, "\n\n")
}

type OllamaChatResponse struct {
	Model   string       `json:"model"`
	Message *ChatMessage `json:"message"`
	Done    bool         `json:"done"`
}
