package httpclient

import (
	"io"
	"net/http"
	"time"
)

// Client defines an interface for making HTTP requests
// This allows for easy mocking and testing of HTTP calls
type Client interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
	Get(url string) (*http.Response, error)
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the current bearer credential, if any.
type TokenSource interface {
	Token() (string, bool)
}

// StandardHTTPClient wraps the standard http.Client
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardClient creates a new HTTP client with default settings
func NewStandardClient() Client {
	return NewClientWithTimeout(30 * time.Second)
}

// NewClientWithTimeout creates a new HTTP client with the given timeout
func NewClientWithTimeout(timeout time.Duration) Client {
	return &StandardHTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// NewBearerClient creates an HTTP client whose transport injects the
// Authorization header from the token source on every request.
func NewBearerClient(timeout time.Duration, tokens TokenSource) Client {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: NewBearerTransport(tokens, nil),
		},
	}
}

// Post makes a POST request
func (c *StandardHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return c.client.Post(url, contentType, body)
}

// Get makes a GET request
func (c *StandardHTTPClient) Get(url string) (*http.Response, error) {
	return c.client.Get(url)
}

// Do executes an HTTP request
func (c *StandardHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// BearerTransport is the single interceptor stage every outgoing request
// passes through: it reads the current token and, when present, sets
// Authorization: Bearer <token>. Absent a token the request goes out
// unmodified; authorization failures come back as HTTP errors and are
// handled by callers.
type BearerTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

// NewBearerTransport wraps next (defaulting to http.DefaultTransport).
func NewBearerTransport(tokens TokenSource, next http.RoundTripper) *BearerTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &BearerTransport{tokens: tokens, next: next}
}

// RoundTrip implements http.RoundTripper.
func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, ok := t.tokens.Token(); ok {
		// Clone before mutating; RoundTrippers must not modify the
		// caller's request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.next.RoundTrip(req)
}
