package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	gh "github.com/google/go-github/v58/github"
	"go.uber.org/zap"

	"github.com/dshills/dangermd/internal/template"
)

const (
	defaultAPIURL = "https://api.github.com"
	commentsPage  = 100
)

// ErrNoToken is returned by NewClient when GITHUB_TOKEN is unset.
var ErrNoToken = errors.New("GITHUB_TOKEN environment variable is not set")

// Action describes what UpsertComment or DeleteComment did.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDeleted   Action = "deleted"
	ActionUnchanged Action = "unchanged"
)

// Client provides access to pull-request comments.
type Client struct {
	api *gh.Client
	log *zap.Logger
}

// NewClient creates a new GitHub client. Requires GITHUB_TOKEN env var.
func NewClient(log *zap.Logger) (*Client, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, ErrNoToken
	}

	apiURL := os.Getenv("GITHUB_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	api := gh.NewClient(&http.Client{Timeout: 60 * time.Second}).WithAuthToken(token)
	if err := setBaseURL(api, apiURL); err != nil {
		return nil, err
	}
	return newClient(api, log), nil
}

func newClient(api *gh.Client, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{api: api, log: log}
}

// setBaseURL points api at raw. go-github requires a trailing slash.
func setBaseURL(api *gh.Client, raw string) error {
	u, err := url.Parse(strings.TrimRight(raw, "/") + "/")
	if err != nil {
		return fmt.Errorf("parsing GITHUB_API_URL: %w", err)
	}
	api.BaseURL = u
	return nil
}

// FindComment returns the first comment on the pull request whose body
// carries the identity marker for id, or nil if there is none.
func (c *Client) FindComment(ctx context.Context, owner, repo string, pr int, id string) (*gh.IssueComment, error) {
	marker := template.IDToString(id)
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: commentsPage},
	}
	for {
		comments, resp, err := c.api.Issues.ListComments(ctx, owner, repo, pr, opts)
		if err != nil {
			return nil, fmt.Errorf("listing comments on #%d: %w", pr, err)
		}
		for _, cm := range comments {
			if strings.Contains(cm.GetBody(), marker) {
				c.log.Debug("found previous comment",
					zap.Int64("comment_id", cm.GetID()),
					zap.String("marker", marker))
				return cm, nil
			}
		}
		if resp == nil || resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}

// UpsertComment edits the comment carrying id's marker, or creates one.
// An existing comment with an identical body is left alone.
func (c *Client) UpsertComment(ctx context.Context, owner, repo string, pr int, id, body string) (Action, error) {
	existing, err := c.FindComment(ctx, owner, repo, pr, id)
	if err != nil {
		return "", err
	}

	if existing == nil {
		created, _, err := c.api.Issues.CreateComment(ctx, owner, repo, pr, &gh.IssueComment{Body: gh.String(body)})
		if err != nil {
			return "", fmt.Errorf("creating comment on #%d: %w", pr, err)
		}
		c.log.Info("comment created",
			zap.Int("pr", pr),
			zap.Int64("comment_id", created.GetID()),
			zap.String("url", created.GetHTMLURL()))
		return ActionCreated, nil
	}

	if existing.GetBody() == body {
		c.log.Info("comment unchanged", zap.Int("pr", pr), zap.Int64("comment_id", existing.GetID()))
		return ActionUnchanged, nil
	}

	updated, _, err := c.api.Issues.EditComment(ctx, owner, repo, existing.GetID(), &gh.IssueComment{Body: gh.String(body)})
	if err != nil {
		return "", fmt.Errorf("editing comment %d: %w", existing.GetID(), err)
	}
	c.log.Info("comment updated",
		zap.Int("pr", pr),
		zap.Int64("comment_id", updated.GetID()),
		zap.String("url", updated.GetHTMLURL()))
	return ActionUpdated, nil
}

// DeleteComment removes the comment carrying id's marker, if any.
func (c *Client) DeleteComment(ctx context.Context, owner, repo string, pr int, id string) (Action, error) {
	existing, err := c.FindComment(ctx, owner, repo, pr, id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return ActionUnchanged, nil
	}
	if _, err := c.api.Issues.DeleteComment(ctx, owner, repo, existing.GetID()); err != nil {
		return "", fmt.Errorf("deleting comment %d: %w", existing.GetID(), err)
	}
	c.log.Info("comment deleted", zap.Int("pr", pr), zap.Int64("comment_id", existing.GetID()))
	return ActionDeleted, nil
}

// IsAuthError reports whether err is ErrNoToken or came from a 401 or 403
// API response.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrNoToken) {
		return true
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		code := respErr.Response.StatusCode
		return code == http.StatusUnauthorized || code == http.StatusForbidden
	}
	return false
}

var (
	httpsRemoteRe = regexp.MustCompile(`https?://[^/]+/([^/]+)/([^/.\s]+)`)
	sshRemoteRe   = regexp.MustCompile(`[^@]+@[^:]+:([^/]+)/([^/.\s]+)`)
)

// DetectRepo parses owner/repo from the git remote origin URL.
func DetectRepo() (owner, repo string, err error) {
	out, err := exec.Command("git", "remote", "get-url", "origin").Output()
	if err != nil {
		return "", "", fmt.Errorf("cannot detect repo: git remote get-url origin failed: %w", err)
	}
	return ParseRemoteURL(strings.TrimSpace(string(out)))
}

// ParseRemoteURL extracts owner/repo from a git remote URL.
func ParseRemoteURL(remote string) (owner, repo string, err error) {
	remote = strings.TrimSuffix(remote, ".git")

	if m := httpsRemoteRe.FindStringSubmatch(remote); len(m) == 3 {
		return m[1], m[2], nil
	}
	if m := sshRemoteRe.FindStringSubmatch(remote); len(m) == 3 {
		return m[1], m[2], nil
	}
	return "", "", fmt.Errorf("cannot parse owner/repo from remote URL: %s", remote)
}
