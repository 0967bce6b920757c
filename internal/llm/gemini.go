package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements Client using Google's Gemini API.
type geminiClient struct {
	cfg      Config
	client   *genai.Client
	observer Observer
}

// NewGeminiClient creates a Client backed by the Gemini API.
func NewGeminiClient(ctx context.Context, cfg Config, observer Observer) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if observer == nil {
		observer = NoopObserver{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &geminiClient{cfg: cfg, client: client, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		result, err := c.client.Models.GenerateContent(ctx, c.cfg.Model,
			genai.Text(req.Prompt),
			&genai.GenerateContentConfig{
				Temperature: genai.Ptr(float32(temp)),
			},
		)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Task:      req.Task,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      result.Text(),
				Model:     c.cfg.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	err := resolveGeminiErr(ctx, lastErr)
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func resolveGeminiErr(ctx context.Context, lastErr error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *geminiClient) Available(ctx context.Context) bool {
	// The hosted API has no cheap health endpoint worth probing; a
	// configured key is the readiness signal.
	return c.cfg.APIKey != ""
}
