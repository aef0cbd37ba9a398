// Package packagelist resolves the latest cluster package-list identifier
// published by the testing channel mirror.
package packagelist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mesosphere-incubator/dcos-azure/internal/config"
	"github.com/mesosphere-incubator/dcos-azure/internal/util/retry"
)

// DefaultURL is where the testing channel publishes the id of its most
// recent package list, as a one-line text document.
const DefaultURL = config.WindowsBaseURL + "/testing/package-list.latest"

// maxIDLength bounds the response body read; ids are short hashes.
const maxIDLength = 256

// Client fetches the latest package-list id.
type Client struct {
	HTTPClient *http.Client
	URL        string

	// initialDelay seeds the retry backoff; shortened in tests.
	initialDelay time.Duration
}

// New returns a Client against the default mirror.
func New() *Client {
	return &Client{
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
		URL:          DefaultURL,
		initialDelay: time.Second,
	}
}

// Latest fetches the current package-list id, retrying transient failures
// with backoff. A 4xx response is fatal and not retried.
func (c *Client) Latest(ctx context.Context) (string, error) {
	var id string

	err := retry.WithExponentialBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
		if err != nil {
			return retry.Fatal(err)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status %s from %s", resp.Status, c.URL)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return retry.Fatal(err)
			}
			return err
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxIDLength))
		if err != nil {
			return err
		}

		id = strings.TrimSpace(string(body))
		if id == "" {
			return retry.Fatal(fmt.Errorf("empty package-list id from %s", c.URL))
		}
		return nil
	}, retry.WithInitialDelay(c.initialDelay))
	if err != nil {
		return "", err
	}

	return id, nil
}
