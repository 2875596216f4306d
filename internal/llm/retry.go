package llm

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

// sleepFunc waits for the given duration or until the context is done.
// Injected so tests can observe the backoff schedule without sleeping.
type sleepFunc func(ctx context.Context, d time.Duration) error

func contextSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// generateFunc is one attempt at a content generation call
type generateFunc func() (*genai.GenerateContentResponse, error)

// callWithBackoff runs fn, retrying only on HTTP 429 with exponential
// backoff. Any other upstream status fails on first occurrence; transport
// failures are never retried.
func callWithBackoff(ctx context.Context, policy RetryPolicy, sleep sleepFunc, fn generateFunc) (*genai.GenerateContentResponse, error) {
	if sleep == nil {
		sleep = contextSleep
	}

	delay := policy.BaseDelay
	var lastErr error

	for attempt := 0; ; attempt++ {
		resp, err := fn()
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRateLimited(err) || attempt >= policy.MaxRetries {
			break
		}

		log.Printf("[llm] rate limited, retrying in %v (attempt %d/%d)", delay, attempt+1, policy.MaxRetries)
		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
		delay *= 2
	}

	return nil, classifyError(lastErr)
}

// isRateLimited reports whether the error is an HTTP 429 from the provider
func isRateLimited(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests
}

// classifyError maps a provider failure onto the gateway error taxonomy
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &UpstreamError{Status: apiErr.Code, Cause: err}
	}
	return &GatewayError{Cause: err}
}
