// Package store holds the HTTP client for the remote JSON store
// backing the storefront: two collections, /products and /cart, each
// with list/create/replace/delete. The client performs exactly one
// round trip per call and never retries; retry policy, if any, belongs
// to the caller.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RemoteError is the single failure kind surfaced by the client: any
// network failure or non-2xx response collapses into it. Status is 0
// when the request never produced a response.
type RemoteError struct {
	Op     string
	Status int
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("remote store: %s: status %d", e.Op, e.Status)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Client talks to the remote store over HTTP with JSON bodies.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for the store at baseURL. httpc may be nil
// to use http.DefaultClient.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// do runs one round trip. body is JSON-encoded when non-nil, the
// response is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Op: op, Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &RemoteError{Op: op, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RemoteError{Op: op, Status: resp.StatusCode, Err: err}
		}
	}
	return nil
}
