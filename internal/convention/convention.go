package convention

import (
	"context"

	"github.com/thomas-vilte/cz-mate/internal/changelog"
	"github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/domain/models"
	"github.com/thomas-vilte/cz-mate/internal/domain/ports"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
	vcs "github.com/thomas-vilte/cz-mate/internal/vcs/github"
)

// Name is the identifier the rule set registers under; the host discovers
// the convention through it.
const Name = "mate-commits"

// Convention is the mate-commits rule set: conventional commits plus
// GitHub-linked changelog entries. All operations are pure; the only state
// is configuration captured at construction time.
type Convention struct {
	cfg       *config.Config
	t         *i18n.Translations
	questions []models.PromptSpec
	decorator *changelog.Decorator
}

func New(cfg *config.Config, t *i18n.Translations) *Convention {
	c := &Convention{cfg: cfg, t: t}
	c.questions = c.buildQuestions()

	repo := vcs.Repo{Owner: cfg.GitHub.Owner, Name: cfg.GitHub.Name}
	if !repo.IsZero() {
		decorator := changelog.NewDecorator(repo)
		if cfg.GitHub.Token != "" {
			decorator.WithIssueResolver(vcs.NewIssueResolver(repo.Owner, repo.Name, cfg.GitHub.Token))
		}
		c.decorator = decorator
	}

	return c
}

// DecorateMessage forwards to the changelog hooks. Without a configured
// repository the entry is left untouched.
func (c *Convention) DecorateMessage(ctx context.Context, parsed *models.ParsedMessage, commit models.GitCommit) {
	if c.decorator != nil {
		c.decorator.DecorateMessage(ctx, parsed, commit)
	}
}

// DecorateChangelog forwards to the changelog hooks. Without a configured
// repository the document is returned unchanged.
func (c *Convention) DecorateChangelog(fullChangelog string) string {
	if c.decorator == nil {
		return fullChangelog
	}
	return c.decorator.DecorateChangelog(fullChangelog)
}

// Factory registers the rule set with the convention registry.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreateConvention(t *i18n.Translations, cfg *config.Config) ports.Convention {
	return New(cfg, t)
}
