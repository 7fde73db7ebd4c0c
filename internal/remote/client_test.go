package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolandbouwer/appdash/internal/errors"
)

func floatPtr(f float64) *float64 { return &f }

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{"http url", "http://localhost:8000", false},
		{"https url", "https://health.example.com", false},
		{"trailing slash stripped", "http://localhost:8000/", false},
		{"missing scheme", "localhost:8000", true},
		{"garbage", "://nope", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.base)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.False(t, strings.HasSuffix(c.BaseURL(), "/"))
		})
	}
}

func TestListApplications(t *testing.T) {
	apps := []Application{
		{
			ID: 1, Name: "billing", URL: "https://billing.internal", IsProduction: true,
			Tags: []Tag{{ID: 3, Name: "payments"}},
			HealthChecks: []HealthCheck{
				{ID: 11, Status: StatusUp, ResponseTime: floatPtr(0.21), CheckedAt: time.Now().UTC()},
			},
		},
		{ID: 2, Name: "staging-portal", URL: "http://portal.staging"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/applications/", r.URL.Path)
		json.NewEncoder(w).Encode(apps)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	got, err := c.ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "billing", got[0].Name)
	assert.True(t, got[0].IsProduction)
	assert.Equal(t, []string{"payments"}, got[0].TagNames())

	latest, ok := got[0].LatestCheck()
	require.True(t, ok)
	assert.True(t, latest.Up())
	require.NotNil(t, latest.ResponseTime)
	assert.InDelta(t, 0.21, *latest.ResponseTime, 0.0001)

	_, ok = got[1].LatestCheck()
	assert.False(t, ok)
}

func TestHealthChecks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applications/42/health_checks/", r.URL.Path)
		json.NewEncoder(w).Encode([]HealthCheck{
			{ID: 2, Status: StatusDown, CheckedAt: time.Now().UTC()},
			{ID: 1, Status: StatusUp, ResponseTime: floatPtr(0.2), CheckedAt: time.Now().UTC().Add(-time.Minute)},
		})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	checks, err := c.HealthChecks(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, checks, 2)

	// Service order is most-recent-first; the client must not reorder.
	assert.Equal(t, int64(2), checks[0].ID)
	assert.Nil(t, checks[0].ResponseTime)
}

func TestCreateApplication(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/applications/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in ApplicationInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "checkout", in.Name)
		assert.Equal(t, []string{"payments", "edge"}, in.Tags)

		json.NewEncoder(w).Encode(Application{
			ID: 7, Name: in.Name, URL: in.URL, IsProduction: in.IsProduction,
			Tags: []Tag{{ID: 1, Name: "payments"}, {ID: 2, Name: "edge"}},
		})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	app, err := c.CreateApplication(context.Background(), ApplicationInput{
		Name: "checkout", URL: "https://checkout.internal", IsProduction: true,
		Tags: []string{"payments", "edge"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), app.ID, "identity must come from the server")
}

func TestUpdateApplication(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/applications/7", r.URL.Path)
		json.NewEncoder(w).Encode(Application{ID: 7, Name: "checkout-v2"})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	app, err := c.UpdateApplication(context.Background(), 7, ApplicationInput{Name: "checkout-v2", URL: "https://x"})
	require.NoError(t, err)
	assert.Equal(t, "checkout-v2", app.Name)
}

func TestDeleteApplication(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/applications/7", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	assert.NoError(t, c.DeleteApplication(context.Background(), 7))
}

func TestTagOperations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/tags/":
			json.NewEncoder(w).Encode([]Tag{{ID: 1, Name: "payments"}})
		case r.Method == http.MethodPost && r.URL.Path == "/tags/":
			var in TagInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			json.NewEncoder(w).Encode(Tag{ID: 2, Name: in.Name})
		case r.Method == http.MethodDelete && r.URL.Path == "/tags/2":
			json.NewEncoder(w).Encode(map[string]bool{"ok": true})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	tags, err := c.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	tag, err := c.CreateTag(ctx, TagInput{Name: "edge"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), tag.ID)

	assert.NoError(t, c.DeleteTag(ctx, 2))
}

func TestUpdateTagNotImplemented(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.UpdateTag(context.Background(), 1, TagInput{Name: "renamed"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotImpl))
	assert.Zero(t, requests, "update tag must fail without touching the network")
}

func TestBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "tag not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	// Deleting an already-removed tag surfaces a status error, never a crash.
	err = c.DeleteTag(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrStatus))
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "tag not found")
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close() // nothing listening anymore

	c, err := NewClient(base)
	require.NoError(t, err)

	_, err = c.ListApplications(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = c.ListApplications(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
}

func TestBadResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.ListApplications(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrStatus))
}
