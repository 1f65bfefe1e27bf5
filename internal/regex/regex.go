package regex

import "regexp"

var (
	// Commit grammar patterns
	//
	// CommitParser captures the first line of a conventional commit:
	// type, optional scope (no nested parentheses), optional breaking
	// marker, subject. The second alternative accepts any `word!:` header,
	// which always signals a breaking change even when the keyword is not
	// part of the vocabulary.
	CommitParser = regexp.MustCompile(`^(?:(feat|fix|perf|refactor|style|build|test|docs|ci|chore|BREAKING CHANGE)(?:\(([^()\r\n]*)\))?(!)?|(\w+)!):\s(.*)$`)

	// BumpPattern selects the commits the host inspects when computing the
	// next version.
	BumpPattern = regexp.MustCompile(`^(?:(?:feat|fix|perf|refactor|style|build|test|docs|ci|chore)(?:\(.+\))?!?|\w+!):`)

	// ChangelogPattern selects the commits that enter the changelog.
	ChangelogPattern = regexp.MustCompile(`^(?:(?:feat|fix|perf|refactor)(?:\(.+\))?!?|\w+!):`)

	// BreakingFooter matches a BREAKING CHANGE footer line inside a commit
	// body.
	BreakingFooter = regexp.MustCompile(`(?m)^BREAKING[ -]CHANGE:\s*(.+)$`)

	// Scope guard for interactive answers
	ScopeForbidden = regexp.MustCompile(`[()\r\n]`)

	// Changelog decoration patterns
	IssueRef   = regexp.MustCompile(`#(\d+)`)
	TagHeading = regexp.MustCompile(`(?m)^(#{1,2}) (v?\d+\.\d+\.\d+\S*) \(`)
)
