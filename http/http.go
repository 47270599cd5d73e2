package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Timeout bounds a whole request, body included.
const Timeout = 120 * time.Second

// Client is used by Get; tests may swap its transport.
var Client = &http.Client{Timeout: Timeout}

// Get downloads url and returns the response body.
func Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
