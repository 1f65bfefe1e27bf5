package ports

import (
	"context"

	"github.com/thomas-vilte/cz-mate/internal/domain/models"
)

// ChangelogDecorator is implemented by conventions that want to rewrite
// changelog entries before the host renders them. Both hooks are optional;
// the host type-asserts for this interface.
type ChangelogDecorator interface {
	// DecorateMessage runs once per parsed commit and may rewrite the entry
	// in place, for example to add links.
	DecorateMessage(ctx context.Context, parsed *models.ParsedMessage, commit models.GitCommit)

	// DecorateChangelog runs once at the end of changelog generation over
	// the full document and returns the updated text.
	DecorateChangelog(fullChangelog string) string
}

// IssueResolver resolves an issue number to its title so links can carry
// readable text.
type IssueResolver interface {
	IssueTitle(ctx context.Context, number int) (string, error)
}
