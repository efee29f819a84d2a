package whoami

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/rtfdoc/api"
)

func TestRunWhoami(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/me", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": "user-1", "email": "test@example.com", "displayName": "Sam Writer", "role": "editor"}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, "test@example.com", "token")
	for _, output := range []string{"", "json", "plain"} {
		t.Run("output "+output, func(t *testing.T) {
			require.NoError(t, runWhoami(context.Background(), &whoamiOptions{output: output, noColor: true}, client))
		})
	}
}

func TestRunWhoami_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Authentication failed"}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, "test@example.com", "bad")
	err := runWhoami(context.Background(), &whoamiOptions{noColor: true}, client)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get profile")
}

func TestRunWhoami_InvalidOutput(t *testing.T) {
	client := api.NewClient("http://unused", "test@example.com", "token")
	err := runWhoami(context.Background(), &whoamiOptions{output: "yaml"}, client)
	require.Error(t, err)
}
