package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GenerateRequest holds the parameters for a generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model for text generation.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// geminiClient implements Client using the Gemini API.
type geminiClient struct {
	cfg      AIConfig
	genai    *genai.Client
	observer Observer
}

// NewGeminiClient creates a Client backed by the Gemini API.
func NewGeminiClient(ctx context.Context, cfg AIConfig, observer Observer) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrUnavailable
	}
	if observer == nil {
		observer = NoopObserver{}
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiClient{cfg: cfg, genai: gc, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	temp32 := float32(temp)
	genCfg := &genai.GenerateContentConfig{
		Temperature:     &temp32,
		MaxOutputTokens: int32(maxTok),
	}
	if req.SystemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	contents := []*genai.Content{
		genai.NewContentFromText(req.UserPrompt, genai.RoleUser),
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.Model, contents, genCfg)
		if err == nil {
			text := strings.TrimSpace(resp.Text())
			if text == "" {
				lastErr = ErrEmptyResponse
			} else {
				latency := time.Since(start).Milliseconds()
				c.observer.OnCallComplete(CallEvent{
					Task:      req.Task,
					Model:     c.cfg.Model,
					LatencyMs: latency,
					Success:   true,
				})
				return &GenerateResponse{Text: text, Model: c.cfg.Model, LatencyMs: latency}, nil
			}
		} else {
			lastErr = err
		}

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(ctx, lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if errors.Is(lastErr, ErrEmptyResponse) {
		return nil, ErrEmptyResponse
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func errorCode(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case err == nil:
		return ""
	default:
		return "UNKNOWN"
	}
}
