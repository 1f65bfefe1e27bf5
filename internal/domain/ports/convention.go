package ports

import (
	"github.com/thomas-vilte/cz-mate/internal/domain/models"
)

// Convention is the contract a commit rule set exposes to the host tool.
// Every operation is stateless and side-effect free.
type Convention interface {
	// Questions returns the fixed ordered question set used to build a
	// commit message interactively.
	Questions() []models.PromptSpec

	// BuildMessage assembles the final commit message from the answers of
	// the interactive session.
	BuildMessage(answers map[string]string) (string, error)

	// ParseMessage maps a raw commit message back to a structured record.
	ParseMessage(raw string) (models.CommitRecord, error)

	// SeverityFor returns the semantic-version bump class of a commit type.
	// It is total: unrecognized types map to SeverityNone.
	SeverityFor(commitType models.CommitType) models.Severity
}

// BumpClassifier is an optional capability: classify a whole record, where
// a breaking marker wins over the type, with major-version-zero rules on
// demand.
type BumpClassifier interface {
	BumpSeverity(record models.CommitRecord, majorZero bool) models.Severity
}

// ChangelogSections is an optional capability: map commits to changelog
// sections.
type ChangelogSections interface {
	SectionTitle(commitType models.CommitType) string
	SectionOrder() []string
	IncludeInChangelog(raw string) bool
}
