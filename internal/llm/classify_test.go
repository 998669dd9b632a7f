package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func apiError(status int, code string) error {
	var c any
	if code != "" {
		c = code
	}
	return &openai.APIError{HTTPStatusCode: status, Code: c, Message: "upstream error"}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected FailureKind
	}{
		{"401 status", apiError(http.StatusUnauthorized, ""), FailureInvalidCredential},
		{"invalid_api_key code", apiError(http.StatusBadRequest, "invalid_api_key"), FailureInvalidCredential},
		{"429 status", apiError(http.StatusTooManyRequests, ""), FailureQuotaExceeded},
		{"insufficient_quota code", apiError(http.StatusPaymentRequired, "insufficient_quota"), FailureQuotaExceeded},
		{"403 status", apiError(http.StatusForbidden, ""), FailureRegionDenied},
		{"region code", apiError(http.StatusBadRequest, "unsupported_country_region_territory"), FailureRegionDenied},
		{"other api error", apiError(http.StatusInternalServerError, ""), FailureUnspecified},
		{"plain error", errors.New("connection refused"), FailureUnspecified},
		{"timeout", context.DeadlineExceeded, FailureUnspecified},
		{"empty completion", ErrEmptyCompletion, FailureUnspecified},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestClassifyWrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("request failed"), apiError(http.StatusUnauthorized, ""))
	if got := Classify(wrapped); got != FailureInvalidCredential {
		t.Errorf("Expected %q, got %q", FailureInvalidCredential, got)
	}
}
