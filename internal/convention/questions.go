package convention

import (
	"github.com/thomas-vilte/cz-mate/internal/domain/models"
)

// Questions returns the fixed question set of the interactive commit
// session. The list is built once at construction time.
func (c *Convention) Questions() []models.PromptSpec {
	return c.questions
}

func (c *Convention) buildQuestions() []models.PromptSpec {
	choices := make([]models.PromptChoice, 0, len(typeTable))
	for _, info := range typeTable {
		choices = append(choices, models.PromptChoice{
			Value: string(info.key),
			Label: c.t.GetMessage(info.promptID, 0, nil),
		})
	}

	return []models.PromptSpec{
		{
			ID:       "type",
			Kind:     models.PromptSelect,
			Prompt:   c.t.GetMessage("question.type", 0, nil),
			Required: true,
			Choices:  choices,
		},
		{
			ID:     "scope",
			Kind:   models.PromptInput,
			Prompt: c.t.GetMessage("question.scope", 0, nil),
		},
		{
			ID:        "subject",
			Kind:      models.PromptInput,
			Prompt:    c.t.GetMessage("question.subject", 0, nil),
			Required:  true,
			MaxLength: c.cfg.MaxSubjectLength,
		},
		{
			ID:     "body",
			Kind:   models.PromptInput,
			Prompt: c.t.GetMessage("question.body", 0, nil),
		},
		{
			ID:      "breaking",
			Kind:    models.PromptConfirm,
			Prompt:  c.t.GetMessage("question.breaking", 0, nil),
			Default: "no",
		},
		{
			ID:        "breaking_detail",
			Kind:      models.PromptInput,
			Prompt:    c.t.GetMessage("question.breaking_detail", 0, nil),
			EnabledBy: "breaking",
		},
	}
}
