package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
)

// Fixed sampling configuration for article generation. Chosen once; not
// exposed to callers.
const (
	samplingTemperature      = 0.7
	samplingPresencePenalty  = 0.1
	samplingFrequencyPenalty = 0.3
)

const systemPrompt = "You are an expert long-form content writer. Follow every instruction in the user message exactly. Output only the requested content, no commentary."

// OpenAIConfig holds the settings for the OpenAI-backed generator
type OpenAIConfig struct {
	APIKey         string
	Model          string
	BaseURL        string
	RequestTimeout time.Duration
}

// OpenAIGenerator implements TextGenerator using the official openai-go SDK
// (chat completions).
type OpenAIGenerator struct {
	client openai.Client
	model  string
	log    zerolog.Logger
}

// NewOpenAIGenerator builds a generator from configuration
func NewOpenAIGenerator(cfg *OpenAIConfig, log zerolog.Logger) (*OpenAIGenerator, error) {
	if cfg == nil {
		return nil, errors.New("openai config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.RequestTimeout))
	}

	return &OpenAIGenerator{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		log:    log.With().Str("component", "generator").Logger(),
	}, nil
}

// Generate sends one chat-completion request with the token budget as a hard
// output ceiling. No retries; classification only.
func (g *OpenAIGenerator) Generate(ctx context.Context, instruction string, tokenBudget int) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(instruction),
		},
		MaxTokens:        openai.Int(int64(tokenBudget)),
		Temperature:      openai.Float(samplingTemperature),
		PresencePenalty:  openai.Float(samplingPresencePenalty),
		FrequencyPenalty: openai.Float(samplingFrequencyPenalty),
	})
	if err != nil {
		classified := classify(err)
		g.log.Error().Err(err).Int("token_budget", tokenBudget).Msg("Generation request failed")
		return "", classified
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyOutput
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyOutput
	}

	g.log.Debug().Int("output_chars", len(text)).Msg("Generation completed")
	return text, nil
}

// classify maps a transport/API error to the fixed failure taxonomy. The
// original error is wrapped so logs keep the service detail while callers
// only match the sentinel.
func classify(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}
	return err
}
