package ingestion

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("We are hiring."), 0644))

	text, err := PostingFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "We are hiring.", text)
}

func TestPostingFromFile_Missing(t *testing.T) {
	_, err := PostingFromFile("/nonexistent/posting.txt")
	assert.Error(t, err)
}

func TestPostingFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Staff Engineer opening. Go required.</main></body></html>`))
	}))
	defer server.Close()

	text, err := PostingFromURL(t.Context(), server.URL, false, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Staff Engineer opening")
}

func TestSoftTrim_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "short posting", SoftTrim("short posting", 100))
}

func TestSoftTrim_CutsAtNewline(t *testing.T) {
	text := strings.Repeat("line of posting text\n", 100)
	trimmed := SoftTrim(text, 300)

	assert.True(t, strings.HasSuffix(trimmed, TrimMarker))
	body := strings.TrimSuffix(trimmed, TrimMarker)
	assert.LessOrEqual(t, len(body), 300)
	assert.True(t, strings.HasSuffix(body, "line of posting text"), "cut should land on a line boundary")
}

func TestSoftTrim_NoNewlineFallsBackToHardCut(t *testing.T) {
	text := strings.Repeat("x", 500)
	trimmed := SoftTrim(text, 300)
	assert.Equal(t, 300+len(TrimMarker), len(trimmed))
}
