package convention

import (
	"strings"

	"github.com/thomas-vilte/cz-mate/internal/domain/models"
	"github.com/thomas-vilte/cz-mate/internal/regex"
)

type typeInfo struct {
	key models.CommitType
	// severity is the bump class the type asks for; severityZero applies
	// while the project is still below v1.0.0.
	severity     models.Severity
	severityZero models.Severity
	section      string
	emoji        string
	promptID     string
	inChangelog  bool
}

// typeTable is the closed vocabulary of buildable commit types. The order
// is the order the interactive select shows them in.
var typeTable = []typeInfo{
	{models.TypeFeat, models.SeverityMinor, models.SeverityMinor, "Feat", "✨", "type.feat", true},
	{models.TypeFix, models.SeverityPatch, models.SeverityPatch, "Fix", "🐛", "type.fix", true},
	{models.TypePerf, models.SeverityPatch, models.SeverityPatch, "Perf", "⚡", "type.perf", true},
	{models.TypeRefactor, models.SeverityPatch, models.SeverityPatch, "Refactor", "🔨", "type.refactor", true},
	{models.TypeStyle, models.SeverityPatch, models.SeverityPatch, "Style", "🎨", "type.style", false},
	{models.TypeBuild, models.SeverityPatch, models.SeverityPatch, "Build", "📦", "type.build", false},
	{models.TypeTest, models.SeverityPatch, models.SeverityPatch, "Test", "🧪", "type.test", false},
	{models.TypeDocs, models.SeverityPatch, models.SeverityPatch, "Docs", "📝", "type.docs", false},
	{models.TypeCI, models.SeverityPatch, models.SeverityPatch, "CI", "🤖", "type.ci", false},
	{models.TypeChore, models.SeverityPatch, models.SeverityPatch, "Chore", "🧹", "type.chore", false},
}

// sectionOrder fixes the changelog heading order.
var sectionOrder = []string{
	"BREAKING CHANGE",
	"Feat",
	"Fix",
	"Perf",
	"Refactor",
	"Style",
	"Build",
	"Test",
	"Docs",
	"CI",
	"Chore",
}

func lookupType(key string) (typeInfo, bool) {
	for _, info := range typeTable {
		if string(info.key) == key {
			return info, true
		}
	}
	return typeInfo{}, false
}

// SeverityFor maps a commit type to its bump class. The function is total:
// breaking maps to major, unrecognized types map to none.
func (c *Convention) SeverityFor(commitType models.CommitType) models.Severity {
	if commitType == models.TypeBreaking {
		return models.SeverityMajor
	}
	if info, ok := lookupType(string(commitType)); ok {
		return info.severity
	}
	return models.SeverityNone
}

// SeverityForMajorZero is SeverityFor under major-version-zero rules, where
// a breaking change only asks for a minor bump.
func (c *Convention) SeverityForMajorZero(commitType models.CommitType) models.Severity {
	if commitType == models.TypeBreaking {
		return models.SeverityMinor
	}
	if info, ok := lookupType(string(commitType)); ok {
		return info.severityZero
	}
	return models.SeverityNone
}

// BumpSeverity classifies a parsed record: a breaking marker anywhere wins
// over the type's own severity.
func (c *Convention) BumpSeverity(record models.CommitRecord, majorZero bool) models.Severity {
	if record.IsBreaking {
		if majorZero {
			return models.SeverityMinor
		}
		return models.SeverityMajor
	}
	if majorZero {
		return c.SeverityForMajorZero(record.Type)
	}
	return c.SeverityFor(record.Type)
}

// SectionTitle returns the changelog heading of a type, decorated with the
// type's emoji when the configuration asks for it.
func (c *Convention) SectionTitle(commitType models.CommitType) string {
	if commitType == models.TypeBreaking {
		return "BREAKING CHANGE"
	}
	info, ok := lookupType(string(commitType))
	if !ok {
		return ""
	}
	if c.cfg.UseEmoji && info.emoji != "" {
		return info.emoji + " " + info.section
	}
	return info.section
}

// SectionOrder returns the fixed changelog heading order.
func (c *Convention) SectionOrder() []string {
	order := make([]string, len(sectionOrder))
	copy(order, sectionOrder)
	return order
}

// IncludeInChangelog reports whether a commit belongs in the changelog.
// Only feature, fix, perf and refactor commits enter it, plus anything
// marked breaking.
func (c *Convention) IncludeInChangelog(raw string) bool {
	return regex.ChangelogPattern.MatchString(firstLine(raw)) ||
		regex.BreakingFooter.MatchString(raw)
}

// MatchesBump reports whether a commit counts when the host computes the
// next version.
func (c *Convention) MatchesBump(raw string) bool {
	return regex.BumpPattern.MatchString(firstLine(raw))
}

func firstLine(raw string) string {
	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		return strings.TrimSuffix(raw[:idx], "\r")
	}
	return raw
}
