package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	retryWaitTime    = 100 * time.Millisecond
	retryMaxWaitTime = time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL.
//
// timeout caps every request including retries. GET and HEAD requests are
// retried up to retries times when the server answers 429 or 503 or the
// connection fails. Other methods are never retried.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second, 2)
//	resp, err := client.R().Get("/health")
func NewHTTPClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(shouldRetry)

	return &HTTPClient{Client: client}
}

func shouldRetry(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead:
	default:
		return false
	}
	if err != nil {
		return true
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}
