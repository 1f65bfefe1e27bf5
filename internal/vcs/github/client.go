package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

// IssueResolver fetches issue titles from the GitHub API so changelog links
// can carry readable text. It is only wired when a token is configured; the
// hooks fall back to bare links without it.
type IssueResolver struct {
	client *github.Client
	owner  string
	repo   string
}

func NewIssueResolver(owner, repo, token string) *IssueResolver {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &IssueResolver{
		client: github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
	}
}

// IssueTitle returns the title of an issue in the configured repository.
func (r *IssueResolver) IssueTitle(ctx context.Context, number int) (string, error) {
	issue, _, err := r.client.Issues.Get(ctx, r.owner, r.repo, number)
	if err != nil {
		return "", fmt.Errorf("error fetching issue %d from GitHub: %w", number, err)
	}

	if issue == nil {
		return "", fmt.Errorf("issue %d not found on GitHub", number)
	}

	return issue.GetTitle(), nil
}
