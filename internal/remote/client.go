// Package remote is a thin client for the application-health HTTP API.
//
// Each method maps to exactly one (resource, verb) pair. Failures are
// surfaced as structured errors, never retried here; retry and scheduling
// policy belongs to the poller and reconciler callers.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rolandbouwer/appdash/internal/errors"
)

// DefaultTimeout bounds a single request; slow polls surface as transport
// failures rather than hanging the refresh cycle.
const DefaultTimeout = 10 * time.Second

// maxErrorBody limits how much of a failed response body is read for the
// human-readable message.
const maxErrorBody = 4096

// Client talks JSON over HTTP to the health service.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient constructs a client for the service at base,
// e.g. "http://localhost:8000".
func NewClient(base string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' is not a valid API URL", base),
			"Set api_url to something like http://localhost:8000")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' is not a valid API URL", base),
			"Set api_url to something like http://localhost:8000")
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// BaseURL returns the configured service URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ListApplications fetches the full application set, latest checks inlined.
func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.do(ctx, http.MethodGet, "/applications/", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// HealthChecks fetches the health-check history for one application,
// most-recent-first as the service stores it.
func (c *Client) HealthChecks(ctx context.Context, appID int64) ([]HealthCheck, error) {
	var checks []HealthCheck
	path := fmt.Sprintf("/applications/%d/health_checks/", appID)
	if err := c.do(ctx, http.MethodGet, path, nil, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}

// CreateApplication registers a new application and returns the record with
// its server-assigned identity.
func (c *Client) CreateApplication(ctx context.Context, in ApplicationInput) (Application, error) {
	var app Application
	if err := c.do(ctx, http.MethodPost, "/applications/", in, &app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// UpdateApplication replaces the application identified by id and returns
// the updated record.
func (c *Client) UpdateApplication(ctx context.Context, id int64, in ApplicationInput) (Application, error) {
	var app Application
	path := fmt.Sprintf("/applications/%d", id)
	if err := c.do(ctx, http.MethodPut, path, in, &app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// DeleteApplication removes the application identified by id.
func (c *Client) DeleteApplication(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/applications/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListTags fetches all tags.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.do(ctx, http.MethodGet, "/tags/", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag registers a new tag and returns it with its server-assigned
// identity.
func (c *Client) CreateTag(ctx context.Context, in TagInput) (Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodPost, "/tags/", in, &tag); err != nil {
		return Tag{}, err
	}
	return tag, nil
}

// UpdateTag always fails: the health service exposes no tag update endpoint.
// It returns before any request is made.
func (c *Client) UpdateTag(ctx context.Context, id int64, in TagInput) (Tag, error) {
	return Tag{}, errors.NewNotImplemented("update tag")
}

// DeleteTag removes the tag identified by id. Applications that referenced
// the tag keep its name locally until the next poll replaces them.
func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/tags/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues one request and decodes the response into out (when non-nil).
// Transport failures and non-2xx statuses come back as structured errors.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "Can't encode request for "+path)
		}
		reader = bytes.NewReader(b)
	}

	u := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Wrap(err, "Can't build request for "+path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTransport,
			fmt.Sprintf("Can't reach the health API at %s", c.base),
			"Check that the service is running and api_url is correct")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(errors.ErrStatus,
			fmt.Sprintf("%s %s failed with status %d%s", method, path, resp.StatusCode, bodyExcerpt(resp.Body)),
			"")
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.ErrStatus,
			fmt.Sprintf("Can't decode response from %s %s", method, path),
			"The service may be a different version than this client expects")
	}
	return nil
}

// bodyExcerpt reads a short, best-effort excerpt of an error response body.
// The API promises no machine-readable error schema, only text.
func bodyExcerpt(r io.Reader) string {
	buf, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(string(buf))
	if text == "" {
		return ""
	}
	if idx := strings.IndexByte(text, '\n'); idx > 0 {
		text = text[:idx]
	}
	return ": " + text
}
