package convention

import (
	"strings"

	"github.com/thomas-vilte/cz-mate/internal/config"
	domainErrors "github.com/thomas-vilte/cz-mate/internal/domain/errors"
	"github.com/thomas-vilte/cz-mate/internal/domain/models"
	"github.com/thomas-vilte/cz-mate/internal/regex"
)

// ParseMessage maps a raw commit message back to a structured record.
//
// Type keywords are case sensitive and lower case. A `!` before the colon
// or a BREAKING CHANGE footer marks the commit breaking regardless of type;
// `word!:` with an unknown keyword still parses as a breaking commit of
// unrecognized type. Under strict configuration anything outside the
// grammar is a *ParseError; under lenient configuration it becomes a record
// of unrecognized type, never an error.
func (c *Convention) ParseMessage(raw string) (models.CommitRecord, error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	header := lines[0]

	match := regex.CommitParser.FindStringSubmatch(header)
	if match == nil {
		return c.unmatched(header, "the message does not match the conventional commit grammar")
	}

	var record models.CommitRecord
	switch {
	case match[1] != "":
		record.Type = models.CommitType(match[1])
		if record.Type == models.TypeBreaking {
			record.IsBreaking = true
		}
	case match[4] != "":
		record.Type = models.TypeUnrecognized
		record.IsBreaking = true
	}

	record.Scope = match[2]
	if match[3] == "!" {
		record.IsBreaking = true
	}

	record.Subject = strings.TrimSpace(match[5])
	if record.Subject == "" {
		return c.unmatched(header, "missing subject")
	}

	rest := strings.Join(lines[1:], "\n")
	if footer := regex.BreakingFooter.FindStringSubmatch(rest); footer != nil {
		record.IsBreaking = true
		record.BreakingDetail = footer[1]
	}
	record.Body = strings.TrimSpace(regex.BreakingFooter.ReplaceAllString(rest, ""))

	return record, nil
}

func (c *Convention) unmatched(header, reason string) (models.CommitRecord, error) {
	if c.cfg.Strictness == config.StrictnessLenient {
		return models.CommitRecord{
			Type:    models.TypeUnrecognized,
			Subject: strings.TrimSpace(header),
		}, nil
	}
	return models.CommitRecord{}, domainErrors.NewParseError(header, reason)
}
