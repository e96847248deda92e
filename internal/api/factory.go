package api

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 15 * time.Second

func NewClient(apiURL string) (Client, error) {
	return NewClientWithLogger(apiURL, nil)
}

func NewClientWithLogger(apiURL string, logger RequestLogger) (Client, error) {
	return NewClientWithTimeout(apiURL, DefaultTimeout, logger)
}

// NewClientWithTimeout bounds every request to timeout. Non-positive values
// use DefaultTimeout.
func NewClientWithTimeout(apiURL string, timeout time.Duration, logger RequestLogger) (Client, error) {
	base, err := ParseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return newBackendClient(base, timeout, logger), nil
}

// ParseBaseURL normalizes a user supplied API address. A missing scheme
// defaults to https.
func ParseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		return nil, errors.New("api url is required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	if parsed.Host == "" {
		return nil, errors.New("api url must include a host name")
	}
	switch parsed.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("unsupported api url scheme %q", parsed.Scheme)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed, nil
}
