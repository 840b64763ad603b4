package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/circuitbreaker"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
)

// Config configures a Client
type Config struct {
	BaseURL     string
	ServiceName string
	Timeout     time.Duration
}

// HTTPError is returned for responses with a status of 400 or above
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// Client is a JSON HTTP client guarded by a circuit breaker
type Client struct {
	baseURL     string
	serviceName string
	httpClient  *http.Client
	breaker     *circuitbreaker.CircuitBreaker
}

// NewClient creates a new HTTP client
func NewClient(cfg Config, breaker *circuitbreaker.CircuitBreaker) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		serviceName: cfg.ServiceName,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		breaker:     breaker,
	}
}

// BaseURL returns the base URL requests are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON issues a GET and decodes the JSON body into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	call := func(ctx context.Context) error {
		return c.getJSON(ctx, endpoint, result)
	}
	if c.breaker == nil {
		return call(ctx)
	}
	return c.breaker.Execute(ctx, call)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, result interface{}) error {
	url := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("HTTP request failed",
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request completed",
		logger.String("url", url),
		logger.String("service", c.serviceName),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode >= 400 {
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
