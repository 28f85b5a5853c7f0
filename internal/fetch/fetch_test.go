package fetch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	html, err := HTML(t.Context(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "posting")
}

func TestHTML_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := HTML(t.Context(), server.URL)
	require.Error(t, err)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestHTML_InvalidURL(t *testing.T) {
	_, err := HTML(t.Context(), "not a url")
	assert.Error(t, err)
}

func TestExtractPostingText_PrefersJobDescriptionBlock(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description">Senior Engineer role. Build things.</div>
		<footer>copyright</footer>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Engineer role")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "copyright")
}

func TestExtractPostingText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Just a plain page about a job.</p></body></html>`
	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "plain page about a job")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("too short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long enough content ", 50)))
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb", cleanWhitespace("  a  \n\n\n   b\t\n"))
}
