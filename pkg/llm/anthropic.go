package llm

import (
	"context"
	"fmt"
	"time"

	anthropic "github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/logging"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// AnthropicClient generates patterns through the Anthropic Messages API.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
	logger *zap.Logger
}

// NewAnthropicClient creates a new Anthropic-backed pattern generator.
func NewAnthropicClient(cfg *Config, logger *zap.Logger) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &AnthropicClient{
		client: anthropic.NewClient(cfg.APIKey),
		model:  anthropic.Model(cfg.Model),
		logger: logger.Named("llm"),
	}, nil
}

// GeneratePattern implements PatternGenerator.
func (c *AnthropicClient) GeneratePattern(ctx context.Context, req *models.PatternRequest) (string, error) {
	prompt := BuildPrompt(req)

	c.logger.Debug("pattern generation request",
		zap.String("model", string(c.model)),
		zap.String("description", logging.Truncate(req.Description)))

	start := time.Now()

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     c.model,
		System:    systemPrompt,
		MaxTokens: 64,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		c.logger.Debug("pattern generation failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.String("error", logging.SanitizeError(err)))
		return "", fmt.Errorf("create messages: %w", err)
	}

	pattern := CleanResponse(resp.GetFirstContentText())
	c.logger.Debug("pattern generation completed",
		zap.Duration("elapsed", time.Since(start)))

	return pattern, nil
}
