package llm

import (
	"fmt"
	"strings"
	"time"

	"context"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/logging"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// Config holds configuration for creating an external pattern generator.
type Config struct {
	Provider string // "openai" or "anthropic"; empty disables the external call
	Endpoint string // Base URL, e.g. "https://api.openai.com/v1"
	Model    string // Model name, e.g. "gpt-4o-mini"
	APIKey   string // Optional for local OpenAI-compatible endpoints
}

// Client generates patterns through an OpenAI-compatible chat endpoint.
type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a new OpenAI-compatible pattern generator.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		logger: logger.Named("llm"),
	}, nil
}

// GeneratePattern implements PatternGenerator.
func (c *Client) GeneratePattern(ctx context.Context, req *models.PatternRequest) (string, error) {
	prompt := BuildPrompt(req)

	c.logger.Debug("pattern generation request",
		zap.String("model", c.model),
		zap.String("description", logging.Truncate(req.Description)))

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
		MaxTokens:   64,
	})
	if err != nil {
		c.logger.Debug("pattern generation failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.String("error", logging.SanitizeError(err)))
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	pattern := CleanResponse(resp.Choices[0].Message.Content)
	c.logger.Debug("pattern generation completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("total_tokens", resp.Usage.TotalTokens))

	return pattern, nil
}
