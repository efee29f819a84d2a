package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/view"
)

func TestRunExport_HTML(t *testing.T) {
	server := mockServer(t, testDocs)
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "out")
	client := api.NewClient(server.URL, "test@example.com", "token")
	opts := &exportOptions{dir: dir, format: "html", concurrency: 2, noColor: true}

	err := runExport(context.Background(), []string{"doc-100", "doc-101"}, opts, client)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "doc-100.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello <strong>World</strong></p>\n<p>café</p>\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "doc-101.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Agenda <em>items</em></p>\n", string(data))
}

func TestRunExport_Markdown(t *testing.T) {
	server := mockServer(t, testDocs)
	defer server.Close()

	dir := t.TempDir()
	client := api.NewClient(server.URL, "test@example.com", "token")
	opts := &exportOptions{dir: dir, format: "markdown", concurrency: 1, output: "json", noColor: true}

	err := runExport(context.Background(), []string{"doc-100"}, opts, client)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "doc-100.md"))
	require.NoError(t, err)
	assert.Equal(t, "Hello **World**\n\ncafé\n", string(data))
}

func TestRunExport_StopsOnFailure(t *testing.T) {
	server := mockServer(t, testDocs)
	defer server.Close()

	dir := t.TempDir()
	client := api.NewClient(server.URL, "test@example.com", "token")
	opts := &exportOptions{dir: dir, format: "html", concurrency: 1, noColor: true}

	err := runExport(context.Background(), []string{"doc-500"}, opts, client)

	require.Error(t, err)
	assert.ErrorIs(t, err, view.ErrReported)
	assert.Contains(t, err.Error(), "doc-500")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunExport_RefusesOverwrite(t *testing.T) {
	server := mockServer(t, testDocs)
	defer server.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc-100.html"), []byte("keep"), 0644))

	client := api.NewClient(server.URL, "test@example.com", "token")
	opts := &exportOptions{dir: dir, format: "html", concurrency: 1, noColor: true}

	err := runExport(context.Background(), []string{"doc-100"}, opts, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	opts.force = true
	require.NoError(t, runExport(context.Background(), []string{"doc-100"}, opts, client))
}

func TestRunExport_InvalidOptions(t *testing.T) {
	client := api.NewClient("http://unused", "test@example.com", "token")

	tests := []struct {
		name   string
		opts   *exportOptions
		errMsg string
	}{
		{"bad format", &exportOptions{dir: t.TempDir(), format: "pdf", concurrency: 1}, "invalid export format"},
		{"zero concurrency", &exportOptions{dir: t.TempDir(), format: "html", concurrency: 0}, "invalid concurrency"},
		{"bad output", &exportOptions{dir: t.TempDir(), format: "html", concurrency: 1, output: "xml"}, "invalid output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runExport(context.Background(), []string{"doc-100"}, tt.opts, client)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRunExport_RepeatedIDWrittenOnce(t *testing.T) {
	server := mockServer(t, testDocs)
	defer server.Close()

	dir := t.TempDir()
	client := api.NewClient(server.URL, "test@example.com", "token")
	opts := &exportOptions{dir: dir, format: "html", concurrency: 2, noColor: true}

	err := runExport(context.Background(), []string{"doc-100", "doc-100"}, opts, client)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc-100.html", entries[0].Name())
}

func TestRunExport_RejectsSharedFileName(t *testing.T) {
	client := api.NewClient("http://unused", "test@example.com", "token")
	dir := filepath.Join(t.TempDir(), "out")
	opts := &exportOptions{dir: dir, format: "html", concurrency: 2, noColor: true}

	err := runExport(context.Background(), []string{"a/x", "b/x"}, opts, client)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a/x" and "b/x"`)
	assert.NoDirExists(t, dir)
}

func TestExportNames(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		wantIDs   []string
		wantNames []string
		errMsg    string
	}{
		{"distinct", []string{"doc-1", "docs/doc-2"}, []string{"doc-1", "docs/doc-2"}, []string{"doc-1", "doc-2"}, ""},
		{"repeated", []string{"doc-1", "doc-1", "doc-2"}, []string{"doc-1", "doc-2"}, []string{"doc-1", "doc-2"}, ""},
		{"shared basename", []string{"a/x", "b/x"}, nil, nil, "would both be exported"},
		{"dot dot", []string{".."}, nil, nil, "invalid document ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, names, err := exportNames(tt.input)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestWriteExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")

	require.NoError(t, writeExport(path, []byte("first"), false))

	err := writeExport(path, []byte("second"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, writeExport(path, []byte("third"), true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "third", string(data))
}
