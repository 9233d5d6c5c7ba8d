package errors

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ClassifyProviderError wraps a raw provider failure with the provider hint
// inferred from its surface: status-code fragments and error text. The
// collaborator's SDKs do not share an error type, so this works on what both
// expose.
func ClassifyProviderError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce
	}

	return NewProvider("model invocation failed", inferHint(err), err)
}

func inferHint(err error) ProviderHint {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return HintNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return HintRateLimited
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "unauthorized") || strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "api key"):
		return HintAuthFailure
	case strings.Contains(msg, "quota") || strings.Contains(msg, "billing"):
		return HintQuota
	case strings.Contains(msg, "connection") || strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "eof"):
		return HintNetwork
	default:
		return HintUnknown
	}
}
