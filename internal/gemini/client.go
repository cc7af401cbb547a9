// internal/gemini/client.go

// Package gemini wraps the hosted Gemini API behind a small streaming client.
// It speaks to the API's OpenAI-compatibility surface, so the wire protocol
// is delegated entirely to the client library; callers only see chat
// messages, streamed text fragments, and typed API errors.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mwiater/gembench/internal/logging"
)

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    string
	Content string
}

// Roles accepted in StreamRequest history entries.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// StreamMetadata contains metadata about a completed stream, as reported by
// the provider in the final usage chunk. Token counts are zero when the
// provider omits usage information.
type StreamMetadata struct {
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// StreamRequest encapsulates all the information needed to initiate one
// streamed chat turn. History carries the full prior conversation; the
// provider holds no server-side session state between calls.
type StreamRequest struct {
	Model           string
	History         []ChatMessage
	SystemPrompt    string
	Temperature     float64
	MaxOutputTokens int
	ReasoningEffort string
}

// StreamCallbacks defines the callback functions invoked during a stream.
// OnChunk is called once per received text fragment, in arrival order, so
// the caller can observe the first fragment distinctly from the last.
// OnComplete is called once after the stream finishes cleanly.
type StreamCallbacks struct {
	OnChunk    func(fragment string) error
	OnComplete func(meta StreamMetadata) error
}

// APIError is returned when the provider rejects or fails a request. It is
// never retried by this package.
type APIError struct {
	Model      string
	StatusCode int
	Message    string
}

// Error formats the provider failure with its HTTP status when one is known.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gemini api error for model %s (HTTP %d): %s", e.Model, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gemini api error for model %s: %s", e.Model, e.Message)
}

// wrapError converts client library failures into *APIError so callers can
// classify them without importing the library.
func wrapError(model string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{Model: model, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &APIError{Model: model, StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}
	return &APIError{Model: model, Message: err.Error()}
}

// Client issues requests against one API endpoint with one credential.
type Client struct {
	api *openai.Client
}

// NewClient creates a client for the given credential and base URL. An empty
// baseURL selects the hosted Gemini compatibility endpoint.
func NewClient(apiKey, baseURL string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{api: openai.NewClientWithConfig(config)}
}

// Stream sends one chat turn and consumes the streamed response, invoking
// callbacks as fragments arrive. It returns after the stream completes or
// with an *APIError if the provider fails the request.
func (c *Client) Stream(ctx context.Context, req StreamRequest, callbacks StreamCallbacks) error {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, msg := range req.History {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	logging.LogRequest("send", req.Model, fmt.Sprintf("%d messages, max %d tokens", len(messages), req.MaxOutputTokens))

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:               req.Model,
		Messages:            messages,
		MaxCompletionTokens: req.MaxOutputTokens,
		Temperature:         float32(req.Temperature),
		ReasoningEffort:     req.ReasoningEffort,
		Stream:              true,
		StreamOptions: &openai.StreamOptions{
			IncludeUsage: true,
		},
	})
	if err != nil {
		return wrapError(req.Model, err)
	}
	defer stream.Close()

	var lastUsage *openai.Usage
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return wrapError(req.Model, err)
		}

		if len(resp.Choices) > 0 {
			if content := resp.Choices[0].Delta.Content; content != "" && callbacks.OnChunk != nil {
				if err := callbacks.OnChunk(content); err != nil {
					return err
				}
			}
		}
		if resp.Usage != nil {
			lastUsage = resp.Usage
		}
	}

	meta := StreamMetadata{Model: req.Model}
	if lastUsage != nil {
		meta.PromptTokens = lastUsage.PromptTokens
		meta.CompletionTokens = lastUsage.CompletionTokens
	}
	if callbacks.OnComplete != nil {
		return callbacks.OnComplete(meta)
	}
	return nil
}

// ListModels returns the model identifiers available to the credential,
// sorted for stable output.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	list, err := c.api.ListModels(ctx)
	if err != nil {
		return nil, wrapError("", err)
	}

	names := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		names = append(names, m.ID)
	}
	sort.Strings(names)
	return names, nil
}
