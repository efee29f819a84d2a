package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search_Success(t *testing.T) {
	testData := loadTestData(t, "search.json")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "revenue", r.URL.Query().Get("q"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(testData)
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	result, err := client.Search(context.Background(), &SearchOptions{
		Query: "  revenue ",
	})

	require.NoError(t, err)
	assert.Len(t, result.Results, 2)
	assert.Equal(t, 50, result.TotalSize)
	assert.True(t, result.HasMore())

	first := result.Results[0]
	assert.Equal(t, "doc-100", first.Document.ID)
	assert.Equal(t, "Quarterly Report", first.Document.Title)
	assert.Equal(t, "revenue grew in the third quarter", first.Excerpt)
	assert.InDelta(t, 0.92, first.Score, 0.001)
}

func TestClient_Search_Filters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("q"))
		assert.Equal(t, "user-1", q.Get("owner"))
		assert.Equal(t, "markdown", q.Get("format"))
		assert.Equal(t, "5", q.Get("limit"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results": [], "start": 0, "size": 0, "totalSize": 0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	result, err := client.Search(context.Background(), &SearchOptions{
		Owner:  "user-1",
		Format: "markdown",
		Limit:  5,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.False(t, result.HasMore())
}

func TestClient_Search_RequiresQuery(t *testing.T) {
	client := NewClient("http://unused", "user@example.com", "token")

	_, err := client.Search(context.Background(), nil)
	require.Error(t, err)

	_, err = client.Search(context.Background(), &SearchOptions{Query: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a query")
}

func TestClient_Search_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "query too long"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	_, err := client.Search(context.Background(), &SearchOptions{Query: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "query too long")
}
