package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/hireview/hireview-backend/internal/logger"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"
)

// Generator is the text-generation capability the pipelines consume: prompt
// in, raw model text out. Tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userText string) (string, error)
}

// LLMService holds one Gemini client and walks an ordered candidate list of
// model identifiers on availability failures.
type LLMService struct {
	Client llms.Model
	// Models is the injected, deduplicated fallback order: configured model
	// first, then known-good fallbacks.
	Models         []string
	AttemptTimeout time.Duration
	Log            *logger.Logger
}

const defaultAttemptTimeout = 60 * time.Second

func NewLLMService(apiKey string, modelCandidates []string, log *logger.Logger) (*LLMService, error) {
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}
	if len(modelCandidates) == 0 {
		return nil, errors.New("no model candidates configured")
	}

	ctx := context.Background()
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelCandidates[0]),
	)
	if err != nil {
		return nil, err
	}

	return &LLMService{
		Client:         llm,
		Models:         modelCandidates,
		AttemptTimeout: defaultAttemptTimeout,
		Log:            log,
	}, nil
}

// Generate runs one generation with the fallback loop. Temperature is zero
// for reproducibility.
func (s *LLMService) Generate(ctx context.Context, systemPrompt, userText string) (string, error) {
	call := func(ctx context.Context, model string) (string, error) {
		resp, err := s.Client.GenerateContent(ctx,
			[]llms.MessageContent{
				llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
				llms.TextParts(schema.ChatMessageTypeHuman, userText),
			},
			llms.WithModel(model),
			llms.WithTemperature(0),
		)
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("model returned no choices")
		}
		return resp.Choices[0].Content, nil
	}

	return tryModels(ctx, s.Models, s.AttemptTimeout, s.Log, call)
}

// tryModels attempts the call with each candidate in order. Availability
// failures advance to the next candidate; any other failure stops the loop
// and is surfaced as-is, since it is not a model-availability problem.
func tryModels(ctx context.Context, candidates []string, attemptTimeout time.Duration, log *logger.Logger, call func(ctx context.Context, model string) (string, error)) (string, error) {
	var lastErr error

	for _, model := range candidates {
		attemptCtx := ctx
		cancel := func() {}
		if attemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, attemptTimeout)
		}
		out, err := call(attemptCtx, model)
		cancel()

		if err == nil {
			return out, nil
		}
		lastErr = err
		if isModelNotFoundOrUnsupported(err) {
			if log != nil {
				log.Warn("model unavailable, trying next", "model", model, "error", err.Error())
			}
			continue
		}
		return "", err
	}

	msg := "unknown error"
	if lastErr != nil {
		msg = lastErr.Error()
	}
	return "", apperr.Wrap(apperr.KindModelsExhausted,
		"generation failed. Tried models: "+strings.Join(candidates, ", ")+". Last error: "+msg,
		lastErr)
}

// isModelNotFoundOrUnsupported classifies a failure as "this model identifier
// is unavailable on this key" rather than a real error.
func isModelNotFoundOrUnsupported(err error) bool {
	if err == nil {
		return false
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "404") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "not supported") ||
		strings.Contains(lower, "models/")
}
