package nbscribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nbscribe/nbscribe/internal/envutil"
	"github.com/nbscribe/nbscribe/internal/logger"
)

// TextGenerator is one blocking round trip to a remote text-generation
// service: prompt in, completion text out.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Compile-time interface check
var _ TextGenerator = (*OpenAIClient)(nil)

// samplingTemperature is fixed for both transform stages.
const samplingTemperature = 0.7

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint
// (OpenRouter, OpenAI, or any gateway speaking the same wire format).
// Requests are not retried: a failed stage aborts the whole pipeline.
type OpenAIClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewOpenAIClient builds a client from environment configuration:
//
//	AI_API_KEY      required (OPENROUTER_API_KEY accepted as fallback)
//	AI_BASE_URL     default https://openrouter.ai/api/v1
//	AI_MODEL        default google/gemma-3-4b-it:free
//	AI_MAX_TOKENS   default 2048
//	AI_TIMEOUT_SECONDS  default 180
func NewOpenAIClient(log *logger.Logger) (*OpenAIClient, error) {
	apiKey := envutil.Get("AI_API_KEY", "")
	if apiKey == "" {
		apiKey = envutil.Get("OPENROUTER_API_KEY", "")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}

	baseURL := strings.TrimRight(envutil.Get("AI_BASE_URL", "https://openrouter.ai/api/v1"), "/")
	model := envutil.Get("AI_MODEL", "google/gemma-3-4b-it:free")
	maxTokens := envutil.GetInt("AI_MAX_TOKENS", 2048)
	timeoutSec := envutil.GetInt("AI_TIMEOUT_SECONDS", 180)

	if log != nil {
		log = log.With("service", "OpenAIClient", "base_url", baseURL, "model", model)
	}

	return &OpenAIClient{
		log:        log,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

// WithModel returns a copy of the client that uses the given model. An
// empty model returns the receiver unchanged. Used to run the styling
// stage on a different model than the drafting stage.
func (c *OpenAIClient) WithModel(model string) *OpenAIClient {
	model = strings.TrimSpace(model)
	if model == "" || model == c.model {
		return c
	}
	clone := *c
	clone.model = model
	if clone.log != nil {
		clone.log = clone.log.With("model", model)
	}
	return &clone
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateText submits the prompt as a single user message and returns the
// first completion's content. Network failures, non-2xx statuses, and
// malformed bodies are all surfaced uniformly as ErrUpstreamAI.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: samplingTemperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", ErrUpstreamAI, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamAI, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamAI, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrUpstreamAI, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.log != nil {
			c.log.Warn("chat completion failed", "status", resp.StatusCode, "body", truncateForLog(respBody))
		}
		return "", fmt.Errorf("%w: http %d", ErrUpstreamAI, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUpstreamAI, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return parsed.Choices[0].Message.Content, nil
}

// truncateForLog keeps error bodies log-sized.
func truncateForLog(b []byte) string {
	const limit = 512
	s := string(b)
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
