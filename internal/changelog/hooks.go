package changelog

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/thomas-vilte/cz-mate/internal/domain/models"
	"github.com/thomas-vilte/cz-mate/internal/domain/ports"
	"github.com/thomas-vilte/cz-mate/internal/regex"
	vcs "github.com/thomas-vilte/cz-mate/internal/vcs/github"
)

// Decorator implements the two changelog hooks of the convention: it
// rewrites per-commit entries with issue and commit links, and finishes the
// document with tag comparison links plus a link for every collected
// breaking change.
type Decorator struct {
	repo     vcs.Repo
	resolver ports.IssueResolver
	breaking []models.BreakingChange
}

func NewDecorator(repo vcs.Repo) *Decorator {
	return &Decorator{repo: repo}
}

// WithIssueResolver makes issue links carry the issue title as text.
func (d *Decorator) WithIssueResolver(resolver ports.IssueResolver) *Decorator {
	d.resolver = resolver
	return d
}

// DecorateMessage runs once per parsed commit. It links issue references,
// appends a short-rev commit link and records BREAKING CHANGE footer lines
// for DecorateChangelog.
func (d *Decorator) DecorateMessage(ctx context.Context, parsed *models.ParsedMessage, commit models.GitCommit) {
	message := regex.IssueRef.ReplaceAllStringFunc(parsed.Message, func(ref string) string {
		number, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
		if err != nil {
			return ref
		}
		return d.issueLink(ctx, number)
	})

	shortRev := commit.Rev
	if len(shortRev) > 7 {
		shortRev = shortRev[:7]
	}
	message = fmt.Sprintf("%s ([%s](%s))", message, shortRev, d.repo.CommitURL(commit.Rev))
	parsed.Message = message

	for _, match := range regex.BreakingFooter.FindAllStringSubmatch(commit.Body, -1) {
		parsed.Breaking = true
		d.breaking = append(d.breaking, models.BreakingChange{
			Message: match[1],
			Rev:     commit.Rev,
		})
	}
}

func (d *Decorator) issueLink(ctx context.Context, number int) string {
	text := fmt.Sprintf("#%d", number)
	if d.resolver != nil {
		if title, err := d.resolver.IssueTitle(ctx, number); err == nil && title != "" {
			text = fmt.Sprintf("#%d %s", number, title)
		}
	}
	return fmt.Sprintf("[%s](%s)", text, d.repo.IssueURL(number))
}

// DecorateChangelog runs once over the finished document. Version headings
// get a compare link against the next older tag; the oldest tag stays
// unlinked. Tag order comes from semver, not from document order.
func (d *Decorator) DecorateChangelog(fullChangelog string) string {
	tags := headingTags(fullChangelog)

	older := olderTagIndex(tags)
	for _, tag := range tags {
		olderTag, ok := older[tag]
		if !ok {
			continue
		}
		heading := regexp.MustCompile(`(?m)^(#{1,2}) (` + regexp.QuoteMeta(tag) + `)( |$)`)
		link := d.repo.DiffURL(olderTag, tag)
		fullChangelog = heading.ReplaceAllString(fullChangelog, "$1 [$2]("+link+")$3")
	}

	for _, bc := range d.breaking {
		shortRev := bc.Rev
		if len(shortRev) > 7 {
			shortRev = shortRev[:7]
		}
		withLink := fmt.Sprintf("%s ([%s](%s))", bc.Message, shortRev, d.repo.CommitURL(bc.Rev))
		fullChangelog = strings.Replace(fullChangelog, bc.Message, withLink, 1)
	}

	return fullChangelog
}

// BreakingChanges returns the footer lines collected by DecorateMessage.
func (d *Decorator) BreakingChanges() []models.BreakingChange {
	return d.breaking
}

func headingTags(changelog string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, match := range regex.TagHeading.FindAllStringSubmatch(changelog, -1) {
		if !seen[match[2]] {
			seen[match[2]] = true
			tags = append(tags, match[2])
		}
	}
	return tags
}

// olderTagIndex maps every tag to the closest lower version present in the
// document. Tags that do not parse as semver keep document order out of it
// and simply stay unlinked.
func olderTagIndex(tags []string) map[string]string {
	type taggedVersion struct {
		tag     string
		version *semver.Version
	}

	parsed := make([]taggedVersion, 0, len(tags))
	for _, tag := range tags {
		version, err := semver.NewVersion(tag)
		if err != nil {
			continue
		}
		parsed = append(parsed, taggedVersion{tag: tag, version: version})
	}

	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].version.GreaterThan(parsed[j].version)
	})

	older := make(map[string]string, len(parsed))
	for i := 0; i+1 < len(parsed); i++ {
		older[parsed[i].tag] = parsed[i+1].tag
	}
	return older
}
