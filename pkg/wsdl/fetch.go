package wsdl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClientConfig contains configuration for the description client
type ClientConfig struct {
	// HTTPClient is the HTTP client to use (optional)
	// If nil, a default client with 30s timeout is used
	HTTPClient *http.Client

	// UserAgent is the User-Agent header to send
	UserAgent string

	// AcceptHeader specifies the Accept header
	// Defaults to "text/xml, application/xml"
	AcceptHeader string
}

// Client fetches service descriptions over HTTP
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// NewClient creates a new description client
func NewClient() *Client {
	return NewClientWithConfig(ClientConfig{})
}

// NewClientWithConfig creates a new description client with custom configuration
func NewClientWithConfig(config ClientConfig) *Client {
	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if config.UserAgent == "" {
		config.UserAgent = "go-mktows/1.0"
	}
	if config.AcceptHeader == "" {
		config.AcceptHeader = "text/xml, application/xml"
	}
	return &Client{
		config:     config,
		httpClient: client,
	}
}

// Fetch retrieves and parses the service description at the given URL.
// Any failure here is fatal to client construction; there are no retries.
func (c *Client) Fetch(ctx context.Context, descriptionURL string) (*Description, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, descriptionURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", c.config.AcceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrDescriptionUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptionUnavailable, err)
	}

	return Parse(data)
}
