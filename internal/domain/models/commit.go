package models

// CommitType is one keyword of the closed conventional-commit vocabulary.
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypePerf     CommitType = "perf"
	TypeRefactor CommitType = "refactor"
	TypeStyle    CommitType = "style"
	TypeBuild    CommitType = "build"
	TypeTest     CommitType = "test"
	TypeDocs     CommitType = "docs"
	TypeCI       CommitType = "ci"
	TypeChore    CommitType = "chore"
	TypeBreaking CommitType = "BREAKING CHANGE"

	// TypeUnrecognized is the sentinel for commits that do not carry a
	// known type keyword. Lenient parsing classifies them under it instead
	// of failing.
	TypeUnrecognized CommitType = "unrecognized"
)

// Severity is the semantic-version increment class a commit asks for.
type Severity string

const (
	SeverityMajor Severity = "MAJOR"
	SeverityMinor Severity = "MINOR"
	SeverityPatch Severity = "PATCH"
	SeverityNone  Severity = "NONE"
)

type (
	// CommitRecord is the structured result of parsing one commit message.
	// It lives only for the call that produced it.
	CommitRecord struct {
		Type           CommitType
		Scope          string
		Subject        string
		Body           string
		IsBreaking     bool
		BreakingDetail string
	}

	// GitCommit carries the commit metadata the host hands to the
	// changelog hooks.
	GitCommit struct {
		Rev         string
		Title       string
		Body        string
		Author      string
		AuthorEmail string
	}

	// ParsedMessage is the mutable changelog entry a message-builder hook
	// is allowed to rewrite before the host renders it.
	ParsedMessage struct {
		ChangeType CommitType
		Scope      string
		Message    string
		Breaking   bool
	}

	// BreakingChange pairs a BREAKING CHANGE footer line with the commit
	// that introduced it.
	BreakingChange struct {
		Message string
		Rev     string
	}
)
