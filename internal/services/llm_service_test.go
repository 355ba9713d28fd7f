package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hireview/hireview-backend/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryModelsSkipsUnavailable(t *testing.T) {
	var attempted []string
	call := func(ctx context.Context, model string) (string, error) {
		attempted = append(attempted, model)
		switch model {
		case "a", "b":
			return "", errors.New("model not found")
		default:
			return "output from c", nil
		}
	}

	out, err := tryModels(context.Background(), []string{"a", "b", "c"}, 0, nil, call)
	require.NoError(t, err)
	assert.Equal(t, "output from c", out)
	assert.Equal(t, []string{"a", "b", "c"}, attempted)
}

func TestTryModelsStopsOnRealError(t *testing.T) {
	var attempted []string
	authErr := errors.New("permission denied: invalid API key")
	call := func(ctx context.Context, model string) (string, error) {
		attempted = append(attempted, model)
		return "", authErr
	}

	_, err := tryModels(context.Background(), []string{"a", "b", "c"}, 0, nil, call)
	require.Error(t, err)
	assert.ErrorIs(t, err, authErr)
	assert.Equal(t, []string{"a"}, attempted, "loop must stop at the first non-availability failure")
}

func TestTryModelsExhausted(t *testing.T) {
	call := func(ctx context.Context, model string) (string, error) {
		return "", errors.New("404 model " + model + " is not supported")
	}

	_, err := tryModels(context.Background(), []string{"a", "b"}, 0, nil, call)
	require.Error(t, err)
	assert.Equal(t, apperr.KindModelsExhausted, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "a, b")
	assert.Contains(t, err.Error(), "404")
}

func TestIsModelNotFoundOrUnsupported(t *testing.T) {
	assert.True(t, isModelNotFoundOrUnsupported(errors.New("HTTP 404 from provider")))
	assert.True(t, isModelNotFoundOrUnsupported(errors.New("model Not Found")))
	assert.True(t, isModelNotFoundOrUnsupported(errors.New("this model is not supported for generateContent")))
	assert.True(t, isModelNotFoundOrUnsupported(errors.New("no access to models/gemini-1.5-pro")))
	assert.False(t, isModelNotFoundOrUnsupported(errors.New("context deadline exceeded")))
	assert.False(t, isModelNotFoundOrUnsupported(nil))
}
