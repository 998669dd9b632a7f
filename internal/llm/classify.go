package llm

import (
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// FailureKind labels an upstream failure for diagnostics. It never
// influences the response sent to the caller.
type FailureKind string

const (
	FailureInvalidCredential FailureKind = "invalid_credential"
	FailureQuotaExceeded     FailureKind = "quota_exceeded"
	FailureRegionDenied      FailureKind = "region_denied"
	FailureUnspecified       FailureKind = "unspecified"
)

// Classify inspects a completion error and buckets it for logging.
func Classify(err error) FailureKind {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return FailureUnspecified
	}
	code, _ := apiErr.Code.(string)
	switch {
	case code == "unsupported_country_region_territory" || apiErr.HTTPStatusCode == http.StatusForbidden:
		return FailureRegionDenied
	case code == "insufficient_quota" || apiErr.HTTPStatusCode == http.StatusTooManyRequests:
		return FailureQuotaExceeded
	case code == "invalid_api_key" || apiErr.HTTPStatusCode == http.StatusUnauthorized:
		return FailureInvalidCredential
	case strings.Contains(apiErr.Message, "quota"):
		return FailureQuotaExceeded
	default:
		return FailureUnspecified
	}
}
