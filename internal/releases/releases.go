// Package releases discovers downloadable tool releases from GitHub.
package releases

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/lantern-launcher/lantern/internal/log"
	"github.com/lantern-launcher/lantern/internal/versions"
)

// Release describes one published release of the tooling project.
type Release struct {
	Tag         string
	PreRelease  bool
	PublishedAt time.Time
	// Assets maps asset file name to its browser download URL.
	Assets map[string]string
}

// Client lists releases from a GitHub repository.
type Client struct {
	gh            *github.Client
	logger        log.Logger
	authenticated bool
}

// Option configures a Client.
type Option func(*Client)

// WithGitHubClient overrides the GitHub API client, used by tests to point
// at a local server.
func WithGitHubClient(gh *github.Client) Option {
	return func(c *Client) {
		c.gh = gh
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a release client. If GITHUB_TOKEN is set in the environment
// it is used for authenticated requests, which raises the API rate limit.
func New(opts ...Option) *Client {
	var httpClient *http.Client
	authenticated := false

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		authenticated = true
	}

	c := &Client{
		gh:            github.NewClient(httpClient),
		logger:        log.Default(),
		authenticated: authenticated,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func splitRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo format: %s (expected owner/repo)", repo)
	}
	return parts[0], parts[1], nil
}

// List returns the published releases of repo, newest first. Draft releases
// are skipped.
func (c *Client) List(ctx context.Context, repo string) ([]Release, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	opts := &github.ListOptions{PerPage: 100}
	ghReleases, _, err := c.gh.Repositories.ListReleases(ctx, owner, name, opts)
	if err != nil {
		if wrapped := c.wrapRateLimitError(err); wrapped != nil {
			return nil, wrapped
		}
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}

	out := make([]Release, 0, len(ghReleases))
	tags := make([]string, 0, len(ghReleases))
	byTag := make(map[string]Release, len(ghReleases))
	for _, gr := range ghReleases {
		if gr.GetDraft() || gr.TagName == nil {
			continue
		}
		r := Release{
			Tag:        gr.GetTagName(),
			PreRelease: gr.GetPrerelease(),
			Assets:     make(map[string]string, len(gr.Assets)),
		}
		if gr.PublishedAt != nil {
			r.PublishedAt = gr.PublishedAt.Time
		}
		for _, a := range gr.Assets {
			if a.Name != nil && a.BrowserDownloadURL != nil {
				r.Assets[a.GetName()] = a.GetBrowserDownloadURL()
			}
		}
		tags = append(tags, r.Tag)
		byTag[r.Tag] = r
	}

	versions.SortNewestFirst(tags)
	for _, tag := range tags {
		out = append(out, byTag[tag])
	}

	c.logger.Debug("listed releases", "repo", repo, "count", len(out))
	return out, nil
}

// Latest returns the most recent published release of repo.
func (c *Client) Latest(ctx context.Context, repo string) (*Release, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	gr, _, err := c.gh.Repositories.GetLatestRelease(ctx, owner, name)
	if err != nil {
		if wrapped := c.wrapRateLimitError(err); wrapped != nil {
			return nil, wrapped
		}
		return nil, fmt.Errorf("failed to get latest release: %w", err)
	}
	if gr.TagName == nil {
		return nil, errors.New("latest release has no tag name")
	}

	r := &Release{
		Tag:        gr.GetTagName(),
		PreRelease: gr.GetPrerelease(),
		Assets:     make(map[string]string, len(gr.Assets)),
	}
	if gr.PublishedAt != nil {
		r.PublishedAt = gr.PublishedAt.Time
	}
	for _, a := range gr.Assets {
		if a.Name != nil && a.BrowserDownloadURL != nil {
			r.Assets[a.GetName()] = a.GetBrowserDownloadURL()
		}
	}
	return r, nil
}

// AssetURL returns the download URL of the named asset, or an error when the
// release carries no such asset.
func (r *Release) AssetURL(name string) (string, error) {
	url, ok := r.Assets[name]
	if !ok {
		return "", fmt.Errorf("release %s has no asset named %q", r.Tag, name)
	}
	return url, nil
}

// RateLimitError reports an exhausted GitHub API quota.
type RateLimitError struct {
	Limit         int
	Remaining     int
	ResetTime     time.Time
	Authenticated bool
	Err           error
}

func (e *RateLimitError) Error() string {
	msg := fmt.Sprintf("GitHub API rate limit exceeded (limit %d, resets %s)",
		e.Limit, e.ResetTime.Format(time.Kitchen))
	if !e.Authenticated {
		msg += "; set GITHUB_TOKEN to raise the limit"
	}
	return msg
}

func (e *RateLimitError) Unwrap() error { return e.Err }

func (c *Client) wrapRateLimitError(err error) error {
	var rl *github.RateLimitError
	if errors.As(err, &rl) {
		return &RateLimitError{
			Limit:         rl.Rate.Limit,
			Remaining:     rl.Rate.Remaining,
			ResetTime:     rl.Rate.Reset.Time,
			Authenticated: c.authenticated,
			Err:           err,
		}
	}
	return nil
}
