package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxErrorBodyLength = 256

// HTTPGet performs GET request on the url and decodes json body into TResponse
func HTTPGet[TResponse any](ctx context.Context, client *http.Client, url string) (TResponse, error) {
	var result TResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result, fmt.Errorf("failed to create request for %s: %w", url, err)
	}

	req.Header.Set("Accept", "application/json")

	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return result, fmt.Errorf("request to %s failed: %w", url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))

		return result, fmt.Errorf("request to %s returned status %d: %s", url, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return result, nil
}
