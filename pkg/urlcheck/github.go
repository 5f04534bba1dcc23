package urlcheck

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

// githubChecker resolves github.com repository URLs through the
// Repositories API. Renamed repositories follow their redirect and
// still count as available.
type githubChecker struct {
	client *github.Client
}

func newGitHubChecker(timeout time.Duration) *githubChecker {
	return &githubChecker{
		client: github.NewClient(&http.Client{Timeout: timeout}),
	}
}

func (g *githubChecker) check(ctx context.Context, rawURL, owner, repo string) Result {
	res := Result{URL: rawURL}

	_, resp, err := g.client.Repositories.Get(ctx, owner, repo)
	if resp != nil {
		res.StatusCode = resp.StatusCode
	}
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Available = true
	return res
}

// splitGitHubRepo extracts the owner and repository name from a
// github.com/OWNER/REPO URL. Deeper paths (blob, releases, wiki) are
// not repository roots and go through the plain HTTP check.
func splitGitHubRepo(rawURL string) (owner, repo string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", false
	}
	host := strings.ToLower(u.Host)
	if host != "github.com" && host != "www.github.com" {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
