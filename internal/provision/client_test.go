package provision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koprumezun/mezunhub/internal/seed"
)

func TestHTTPProvisionerEnvelopeResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"viewerId":"u-remote","users":[{"id":"u-remote","name":"Remote User"}]},"meta":{"warning":"stale dataset"}}`))
	}))
	defer srv.Close()

	snapshot, warning, err := NewHTTPProvisioner(srv.URL).FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-remote", snapshot.ViewerID)
	require.Len(t, snapshot.Users, 1)
	assert.Equal(t, "stale dataset", warning)
}

func TestHTTPProvisionerBareSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"viewerId":"u-bare"}`))
	}))
	defer srv.Close()

	snapshot, warning, err := NewHTTPProvisioner(srv.URL).FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-bare", snapshot.ViewerID)
	assert.Empty(t, warning)
}

func TestHTTPProvisionerNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, _, err := NewHTTPProvisioner(srv.URL).FetchSnapshot(context.Background())
	assert.Error(t, err)
}

func TestHTTPProvisionerMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	_, _, err := NewHTTPProvisioner(srv.URL).FetchSnapshot(context.Background())
	assert.Error(t, err)
}

func TestHTTPProvisionerUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, _, err := NewHTTPProvisioner(srv.URL).FetchSnapshot(context.Background())
	assert.Error(t, err)
}

func TestStaticProvisionerServesSeed(t *testing.T) {
	snapshot, warning, err := StaticProvisioner{}.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, warning)

	assert.Equal(t, seed.ViewerID, snapshot.ViewerID)
	assert.NotEmpty(t, snapshot.Users)
	assert.NotEmpty(t, snapshot.Groups)
	assert.NotEmpty(t, snapshot.Events)

	viewerFound := false
	for _, user := range snapshot.Users {
		if user.ID == snapshot.ViewerID {
			viewerFound = true
		}
	}
	assert.True(t, viewerFound, "the seed viewer must exist in the user directory")
}
