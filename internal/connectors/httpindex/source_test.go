package httpindex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

func newServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(content))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSource_List(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/kb/index.json": `["roles.md", 42, "logo.png", "cache.md", "missing.md"]`,
		"/kb/roles.md":   "# Roles",
		"/kb/cache.md":   "# Cache",
	})

	docs, err := New(Config{BaseURL: srv.URL + "/kb/"}).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.SourceDocument{
		{Name: "roles.md", Content: "# Roles"},
		{Name: "cache.md", Content: "# Cache"},
	}, docs, "index order is kept and failed downloads are skipped")
}

func TestSource_List_IndexErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"missing index", map[string]string{}},
		{"index is not an array", map[string]string{"/index.json": `{"files":[]}`}},
		{"index is not json", map[string]string{"/index.json": `roles.md`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.files)

			_, err := New(Config{BaseURL: srv.URL}).List(context.Background())

			assert.Error(t, err)
		})
	}
}

func TestSource_List_EmptyIndex(t *testing.T) {
	srv := newServer(t, map[string]string{"/index.json": `[]`})

	docs, err := New(Config{BaseURL: srv.URL, Concurrency: 1}).List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSource_ID(t *testing.T) {
	assert.Equal(t, "https://kb.example.com/docs", New(Config{BaseURL: "https://kb.example.com/docs/"}).ID())
}
