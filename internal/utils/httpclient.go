package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient is a small JSON-API client with a shared timeout.
type HTTPClient struct {
	httpClient *http.Client
	headers    map[string]string
}

// NewHTTPClient creates a client. Default headers (e.g. Authorization)
// are attached to every request.
func NewHTTPClient(timeout time.Duration, headers map[string]string) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers: headers,
	}
}

// Get issues a GET with the default headers applied.
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	return c.httpClient.Do(req)
}

// GetJSON issues a GET and decodes the JSON body into target.
func (c *HTTPClient) GetJSON(url string, target interface{}) error {
	resp, err := c.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
