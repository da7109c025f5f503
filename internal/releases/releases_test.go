package releases

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gh, err := github.NewClient(nil).WithEnterpriseURLs(server.URL, server.URL)
	require.NoError(t, err)
	return New(WithGitHubClient(gh))
}

func ghRelease(tag string, draft, prerelease bool, assets ...string) map[string]any {
	as := make([]map[string]any, 0, len(assets))
	for _, name := range assets {
		as = append(as, map[string]any{
			"name":                 name,
			"browser_download_url": "https://example.com/download/" + tag + "/" + name,
		})
	}
	return map[string]any{
		"tag_name":   tag,
		"draft":      draft,
		"prerelease": prerelease,
		"assets":     as,
	}
}

func TestList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/repos/open-goal/jak-project/releases") {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			ghRelease("v0.1.38", false, false, "v0.1.38.tar.gz", "v0.1.38.zip"),
			ghRelease("v0.2.0", false, false, "v0.2.0.tar.gz"),
			ghRelease("v0.3.0-wip", true, false, "v0.3.0-wip.tar.gz"),
		})
	})

	releases, err := client.List(context.Background(), "open-goal/jak-project")
	require.NoError(t, err)

	// Draft releases are skipped and the remainder sorted newest first.
	require.Len(t, releases, 2)
	assert.Equal(t, "v0.2.0", releases[0].Tag)
	assert.Equal(t, "v0.1.38", releases[1].Tag)

	url, err := releases[1].AssetURL("v0.1.38.zip")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/download/v0.1.38/v0.1.38.zip", url)

	_, err = releases[1].AssetURL("missing.tar.gz")
	assert.ErrorContains(t, err, "no asset named")
}

func TestListInvalidRepo(t *testing.T) {
	client := New()
	for _, repo := range []string{"", "noslash", "too/many/parts", "/repo", "owner/"} {
		_, err := client.List(context.Background(), repo)
		assert.ErrorContains(t, err, "invalid repo format", "repo %q", repo)
	}
}

func TestLatest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(ghRelease("v0.2.0", false, false, "v0.2.0.tar.gz"))
	})

	latest, err := client.Latest(context.Background(), "open-goal/jak-project")
	require.NoError(t, err)
	assert.Equal(t, "v0.2.0", latest.Tag)
	assert.False(t, latest.PreRelease)
}

func TestLatestServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Latest(context.Background(), "open-goal/jak-project")
	assert.ErrorContains(t, err, "failed to get latest release")
}

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{Limit: 60, Authenticated: false}
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")

	err = &RateLimitError{Limit: 5000, Authenticated: true}
	assert.NotContains(t, err.Error(), "GITHUB_TOKEN")
}
