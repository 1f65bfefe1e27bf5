package models

// PromptKind tells the host how to render a question.
type PromptKind string

const (
	PromptInput   PromptKind = "input"
	PromptSelect  PromptKind = "select"
	PromptConfirm PromptKind = "confirm"
)

type (
	// PromptChoice is one option of a select question.
	PromptChoice struct {
		Value string
		Label string
	}

	// PromptSpec is one question of the interactive commit session. The
	// convention builds the full list once at load time and never mutates it.
	PromptSpec struct {
		ID        string
		Kind      PromptKind
		Prompt    string
		Required  bool
		Default   string
		MaxLength int
		Choices   []PromptChoice

		// EnabledBy names a confirm question that must have been answered
		// "yes" for this question to be asked at all.
		EnabledBy string
	}
)
