package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Conventional commit messages with pluggable rule sets"

	[app_description]
	other = "cz-mate builds, checks and classifies commit messages following a registered commit convention"

	[help_command_usage]
	other = "Shows help"

	[factory_already_registered]
	other = "Factory '{{.FactoryName}}' is already registered"

	[convention_already_registered]
	other = "Convention '{{.Name}}' is already registered"

	[question.type]
	other = "Select the type of change you are committing"

	[question.scope]
	other = "Scope of this change, e.g. api, parser"

	[question.subject]
	other = "Short, imperative description of the change"

	[question.body]
	other = "Longer description of the change"

	[question.breaking]
	other = "Is this a breaking change?"

	[question.breaking_detail]
	other = "Describe the breaking change"

	[type.feat]
	other = "A new feature"

	[type.fix]
	other = "A bug fix"

	[type.perf]
	other = "A change that improves performance"

	[type.refactor]
	other = "A change that neither fixes a bug nor adds a feature"

	[type.style]
	other = "Formatting only, no code meaning changed"

	[type.build]
	other = "Changes to the build system or external dependencies"

	[type.test]
	other = "Adding or correcting tests"

	[type.docs]
	other = "Documentation only changes"

	[type.ci]
	other = "Changes to CI configuration"

	[type.chore]
	other = "Maintenance work, no production code change"

	[commit.command_usage]
	other = "Build a commit message interactively"

	[commit.flag_output]
	other = "Write the generated message to a file instead of stdout"

	[commit.flag_dry_run]
	other = "Only print the message, never write files"

	[commit.header]
	other = "Answer the questions to build your commit message"

	[commit.select_hint]
	other = "Enter the number of your choice:"

	[commit.invalid_selection]
	other = "Please enter a number between 1 and {{.Max}}"

	[commit.optional_hint]
	other = "(press enter to skip)"

	[commit.required_answer]
	other = "This answer is required"

	[commit.result_header]
	other = "Generated commit message"

	[commit.written]
	other = "Message written to {{.File}}"

	[check.command_usage]
	other = "Check that a commit message follows the convention"

	[check.flag_message]
	other = "Commit message to check; otherwise read from the file argument or stdin"

	[check.flag_major_zero]
	other = "Use the bump rules for projects still on major version zero"

	[check.empty_input]
	other = "no commit message provided"

	[check.valid]
	other = "The message follows the convention"

	[check.invalid]
	other = "The commit message does not follow the required convention: {{.Error}}"

	[check.type_label]
	other = "Type"

	[check.scope_label]
	other = "Scope"

	[check.subject_label]
	other = "Subject"

	[check.breaking_label]
	other = "Breaking"

	[check.severity_label]
	other = "Version bump"

	[check.section_label]
	other = "Changelog section"

	[check.not_in_changelog]
	other = "not included in the changelog"

	[decorate.command_usage]
	other = "Add commit, issue and diff links to an existing changelog"

	[decorate.flag_output]
	other = "Write the decorated changelog to this file instead of rewriting the input"

	[decorate.decorating]
	other = "Decorating changelog..."

	[decorate.done]
	other = "Decorated changelog saved to {{.File}}"

	[decorate.repo_not_configured]
	other = "GitHub repository is not configured. Set it with 'cz-mate config set github.owner <owner>' and 'cz-mate config set github.name <name>'"

	[config.command_usage]
	other = "Show and edit the configuration"

	[config.show_usage]
	other = "Show the current configuration"

	[config.set_usage]
	other = "Set a configuration value"

	[config.current_header]
	other = "Current configuration"

	[config.saved]
	other = "Configuration saved"

	[config.unknown_key]
	other = "Unknown configuration key '{{.Key}}'"

	[conventions.command_usage]
	other = "List the registered commit conventions"

	[conventions.header]
	other = "Registered conventions"
	`
