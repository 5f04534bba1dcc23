// Package urlcheck probes bibliography URLs for availability.
package urlcheck

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen -source=checker.go -destination=mockchecker.gen.go -package=urlcheck

// Result is the outcome of checking one URL. Err is empty exactly when
// the URL answered with a non-error status.
type Result struct {
	URL        string
	Available  bool
	StatusCode int
	Err        string
}

// Checker interface provides URL availability checks.
type Checker interface {
	// Check reports whether the URL answers. Failures land in the
	// result, never in a returned error.
	Check(ctx context.Context, url string) Result
}

type httpChecker struct {
	client    *http.Client
	github    *githubChecker
	userAgent string
}

// NewChecker creates a Checker backed by plain HTTP GET requests.
// github.com repository URLs are resolved through the GitHub API
// instead, which answers reliably where the HTML frontend rate-limits.
func NewChecker(timeout time.Duration, userAgent string) Checker {
	return &httpChecker{
		client:    &http.Client{Timeout: timeout},
		github:    newGitHubChecker(timeout),
		userAgent: userAgent,
	}
}

// Check reports whether the URL answers.
func (c *httpChecker) Check(ctx context.Context, rawURL string) Result {
	res := Result{URL: rawURL}
	target := NormalizeURL(rawURL)

	if owner, repo, ok := splitGitHubRepo(target); ok {
		return c.github.check(ctx, rawURL, owner, repo)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	defer func() { _ = resp.Body.Close() }()

	res.StatusCode = resp.StatusCode
	if resp.StatusCode >= 400 {
		res.Err = fmt.Sprintf("HTTP status %d", resp.StatusCode)
		return res
	}
	res.Available = true
	return res
}

// NormalizeURL prefixes https:// when the URL has no scheme.
func NormalizeURL(raw string) string {
	if strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}
