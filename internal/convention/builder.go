package convention

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/thomas-vilte/cz-mate/internal/domain/errors"
	"github.com/thomas-vilte/cz-mate/internal/regex"
)

// BuildMessage assembles the commit message from the answers of the
// interactive session. The first line is `type(scope)!: subject`, followed
// by the optional body and the optional BREAKING CHANGE footer.
func (c *Convention) BuildMessage(answers map[string]string) (string, error) {
	typeAnswer := strings.TrimSpace(answers["type"])
	if typeAnswer == "" {
		return "", domainErrors.NewValidationError("type", "type is required")
	}

	info, ok := lookupType(typeAnswer)
	if !ok {
		return "", domainErrors.NewValidationError("type",
			fmt.Sprintf("unknown commit type '%s'", typeAnswer))
	}

	scope := strings.TrimSpace(answers["scope"])
	if scope != "" && regex.ScopeForbidden.MatchString(scope) {
		return "", domainErrors.NewValidationError("scope",
			"scope must not contain parentheses or line breaks")
	}

	subject := strings.TrimSpace(answers["subject"])
	if subject == "" {
		return "", domainErrors.NewValidationError("subject", "subject is required")
	}
	if utf8.RuneCountInString(subject) > c.cfg.MaxSubjectLength {
		return "", domainErrors.NewValidationError("subject",
			fmt.Sprintf("subject exceeds the maximum length of %d characters", c.cfg.MaxSubjectLength))
	}

	breaking := isYes(answers["breaking"])

	var header strings.Builder
	header.WriteString(string(info.key))
	if scope != "" {
		header.WriteString("(" + scope + ")")
	}
	if breaking {
		header.WriteString("!")
	}
	header.WriteString(": " + subject)

	message := header.String()

	if body := strings.TrimSpace(answers["body"]); body != "" {
		message += "\n\n" + body
	}

	if breaking {
		if detail := strings.TrimSpace(answers["breaking_detail"]); detail != "" {
			message += "\n\nBREAKING CHANGE: " + detail
		}
	}

	return message, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "true", "1", "si", "sí":
		return true
	default:
		return false
	}
}
