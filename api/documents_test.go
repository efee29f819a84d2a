package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListDocuments(t *testing.T) {
	testData := loadTestData(t, "documents.json")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/documents", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(testData)
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	result, err := client.ListDocuments(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.True(t, result.HasMore())

	first := result.Results[0]
	assert.Equal(t, "doc-100", first.ID)
	assert.Equal(t, "Quarterly Report", first.Title)
	assert.Equal(t, FormatRTF, first.ContentFormat())
	assert.Equal(t, int64(2048), first.Size)
	assert.Equal(t, time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC), first.UpdatedAt.Time.UTC())

	assert.Equal(t, FormatMarkdown, result.Results[1].ContentFormat())
}

func TestClient_ListDocuments_WithOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "abc123", q.Get("cursor"))
		assert.Equal(t, "report", q.Get("title"))
		assert.Equal(t, "-updated", q.Get("sort"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	result, err := client.ListDocuments(context.Background(), &ListDocumentsOptions{
		Limit:  10,
		Cursor: "abc123",
		Title:  "report",
		Sort:   "-updated",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.False(t, result.HasMore())
}

func TestClient_ListDocuments_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	_, err := client.ListDocuments(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse documents response")
}

func TestClient_GetDocument(t *testing.T) {
	testData := loadTestData(t, "document.json")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/documents/doc-100", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(testData)
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	doc, err := client.GetDocument(context.Background(), "doc-100")

	require.NoError(t, err)
	assert.Equal(t, "doc-100", doc.ID)
	assert.Equal(t, "Quarterly Report", doc.Title)
	assert.Empty(t, doc.Format)
	assert.Equal(t, FormatRTF, doc.ContentFormat())
	assert.Equal(t, "/documents/doc-100", doc.Links.WebUI)
}

func TestClient_GetDocument_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Document not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	_, err := client.GetDocument(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_GetDocument_EmptyID(t *testing.T) {
	client := NewClient("http://unused", "user@example.com", "token")
	_, err := client.GetDocument(context.Background(), "")
	require.Error(t, err)
}

func TestClient_FetchContent(t *testing.T) {
	body := `{\rtf1\ansi Hello \b World\b0 \par}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/documents/doc-100/content", r.URL.Path)
		assert.Contains(t, r.Header.Get("Accept"), "application/rtf")

		w.Header().Set("Content-Type", "application/rtf")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	content, err := client.FetchContent(context.Background(), "doc-100")

	require.NoError(t, err)
	assert.Equal(t, body, string(content))
}

func TestClient_FetchContent_TooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strings.Repeat("x", MaxContentSize+1)))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	_, err := client.FetchContent(context.Background(), "big")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestClient_FetchContent_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "storage offline"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "user@example.com", "token")
	_, err := client.FetchContent(context.Background(), "doc-100")

	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "storage offline")
}
