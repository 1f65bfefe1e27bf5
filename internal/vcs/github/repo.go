package github

import "fmt"

// Repo identifies the GitHub repository the changelog links point at.
type Repo struct {
	Owner string
	Name  string
}

func (r Repo) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s", r.Owner, r.Name)
}

func (r Repo) CommitURL(rev string) string {
	return fmt.Sprintf("%s/commit/%s", r.URL(), rev)
}

func (r Repo) TagURL(tag string) string {
	return fmt.Sprintf("%s/releases/tag/%s", r.URL(), tag)
}

func (r Repo) DiffURL(olderTag, newerTag string) string {
	return fmt.Sprintf("%s/compare/%s...%s", r.URL(), olderTag, newerTag)
}

func (r Repo) IssueURL(number int) string {
	return fmt.Sprintf("%s/issues/%d", r.URL(), number)
}

// IsZero reports whether the repository was never configured.
func (r Repo) IsZero() bool {
	return r.Owner == "" || r.Name == ""
}
