// Package github provides a githost.Client implementation backed by the
// GitHub REST API v3.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dhakseshr/tds-project1/pkg/domain"
	"github.com/dhakseshr/tds-project1/pkg/githost"
	"github.com/dhakseshr/tds-project1/pkg/serrors"
)

const (
	baseURL    = "https://api.github.com"
	apiVersion = "2022-11-28"
	acceptType = "application/vnd.github+json"
)

// Client talks to the GitHub REST API and fulfills the githost.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to api.github.com
	token      string       // token is a personal access token with repo scope
}

// New constructs a Client that uses the provided http.Client and token to
// interact with the GitHub API.
func New(httpClient *http.Client, token string) *Client {
	return &Client{
		httpClient: httpClient,
		token:      token,
	}
}

// do sends an authenticated JSON request and returns the response and its
// body. Non-2xx statuses are mapped to semantic kinds here so every endpoint
// shares the same error semantics.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = strings.NewReader(string(bodyBytes))
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", acceptType)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("could not read response body: %w", err)
	}

	return resp.StatusCode, b, nil
}

// apiError converts a non-2xx GitHub response into a semantic error.
func apiError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "github rejected credentials: %s", msg)
	case http.StatusNotFound:
		return serrors.With(serrors.ErrNotFound, "github resource not found: %s", msg)
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return serrors.With(serrors.ErrConflict, "github reported a conflict: %s", msg)
	case http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "github rate limited: %s", msg)
	default:
		return fmt.Errorf("github request failed with status %d: %s", status, msg)
	}
}

// CreateRepository creates a repository under the authenticated user.
// auto_init is requested so the default branch exists before the first
// contents call.
func (c *Client) CreateRepository(ctx context.Context,
	req githost.CreateRepositoryReq) (*domain.Repository, error) {
	// https://docs.github.com/rest/repos/repos#create-a-repository-for-the-authenticated-user
	type createReq struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Private     bool   `json:"private"`
		AutoInit    bool   `json:"auto_init"`
	}

	status, b, err := c.do(ctx, http.MethodPost, "/user/repos", createReq{
		Name:        req.Name,
		Description: req.Description,
		Private:     req.Private,
		AutoInit:    true,
	})
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, apiError(status, b)
	}

	var createResp struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
		HTMLURL       string `json:"html_url"`
		DefaultBranch string `json:"default_branch"`
	}
	if err := json.Unmarshal(b, &createResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if createResp.DefaultBranch == "" {
		createResp.DefaultBranch = "main"
	}

	return &domain.Repository{
		Owner:         createResp.Owner.Login,
		Name:          createResp.Name,
		DefaultBranch: createResp.DefaultBranch,
		HTMLURL:       createResp.HTMLURL,
	}, nil
}

// PutFile creates the file at path on the repository's default branch via the
// contents API. Content is base64-encoded as the API requires.
func (c *Client) PutFile(ctx context.Context,
	repo *domain.Repository, path string, content []byte, message string) error {
	// https://docs.github.com/rest/repos/contents#create-or-update-file-contents
	type putReq struct {
		Message string `json:"message"`
		Content string `json:"content"`
		Branch  string `json:"branch,omitempty"`
	}

	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s",
		repo.Owner, repo.Name, escapePath(path))
	status, b, err := c.do(ctx, http.MethodPut, endpoint, putReq{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  repo.DefaultBranch,
	})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return apiError(status, b)
	}

	return nil
}

// EnablePages activates GitHub Pages for the repository, serving the default
// branch root. A conflict means Pages is already enabled, which callers treat
// as success. The returned URL is taken from the API response when present,
// otherwise derived as https://<owner>.github.io/<repo>/.
func (c *Client) EnablePages(ctx context.Context, repo *domain.Repository) (string, error) {
	// https://docs.github.com/rest/pages/pages#create-a-github-pages-site
	type pagesReq struct {
		Source struct {
			Branch string `json:"branch"`
			Path   string `json:"path"`
		} `json:"source"`
	}

	var body pagesReq
	body.Source.Branch = repo.DefaultBranch
	body.Source.Path = "/"

	fallbackURL := fmt.Sprintf("https://%s.github.io/%s/", repo.Owner, repo.Name)

	endpoint := fmt.Sprintf("/repos/%s/%s/pages", repo.Owner, repo.Name)
	status, b, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	if status == http.StatusConflict {
		// already enabled
		return fallbackURL, nil
	}
	if status < 200 || status >= 300 {
		return "", apiError(status, b)
	}

	var pagesResp struct {
		HTMLURL string `json:"html_url"`
	}
	if err := json.Unmarshal(b, &pagesResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if pagesResp.HTMLURL == "" {
		return fallbackURL, nil
	}

	return pagesResp.HTMLURL, nil
}

// escapePath escapes each path segment while keeping separators intact, so
// nested paths like css/site.css stay addressable in the contents API.
func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}

	return strings.Join(segs, "/")
}

// Ensure Client conforms to the githost.Client interface at compile time.
var _ githost.Client = (*Client)(nil)
