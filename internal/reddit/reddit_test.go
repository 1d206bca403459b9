package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New()
	c.SetBaseURL(srv.URL)
	return c
}

func TestFetchHot(t *testing.T) {
	var gotPath, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"data":{"children":[
			{"data":{"title":"Local inference tips","permalink":"/r/LocalLLaMA/comments/abc/x/","score":412,"num_comments":88}},
			{"data":{"title":"","permalink":"/r/LocalLLaMA/comments/def/y/"}},
			{"data":{"title":"No permalink","permalink":""}}
		]}}`))
	})

	posts, err := c.FetchHot(context.Background(), "LocalLLaMA", 6)
	require.NoError(t, err)

	assert.Equal(t, "/r/LocalLLaMA/hot.json", gotPath)
	assert.Equal(t, "openclaw-ai-daily-intel/1.0", gotUA)

	// Entries missing title or permalink are skipped.
	require.Len(t, posts, 1)
	assert.Equal(t, "LocalLLaMA", posts[0].Subreddit)
	assert.Equal(t, "Local inference tips", posts[0].Title)
	assert.Equal(t, "https://www.reddit.com/r/LocalLLaMA/comments/abc/x/", posts[0].URL)
	assert.Equal(t, 412, posts[0].Score)
	assert.Equal(t, 88, posts[0].Comments)
}

func TestFetchHotErrorStatuses(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.FetchHot(context.Background(), "PrivateSub", 6)
	require.Error(t, err)
}

func TestFetchHotMalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	})

	_, err := c.FetchHot(context.Background(), "LocalLLaMA", 6)
	require.Error(t, err)
}

func TestParseSubreddits(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"LocalLLaMA,MachineLearning", []string{"LocalLLaMA", "MachineLearning"}},
		{" r/OpenAI , AI_Agents ", []string{"OpenAI", "AI_Agents"}},
		{",,", nil},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSubreddits(tt.in), "input %q", tt.in)
	}
}
