package kml

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

type Client struct {
	HTTP      HTTPDoer
	UserAgent string
}

var DefaultClient = &Client{
	HTTP: defaultHTTP(),
}

func (c *Client) http() HTTPDoer {
	if c.HTTP == nil {
		return DefaultClient.HTTP
	}

	return c.HTTP
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed creating GET request: %w", err)
	}

	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	res, err := c.http().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GET request: %w", err)
	}

	return res, nil
}

// Fetch retrieves the KML document at url and parses its placemark
// polygons.
func (c *Client) Fetch(ctx context.Context, url string) (*Document, error) {
	res, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed getting http response: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &StatusCodeError{StatusCode: res.StatusCode, URL: url}
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading http response: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed parsing KML from %s: %w", url, err)
	}

	return doc, nil
}
