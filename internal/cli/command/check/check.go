package check

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/domain/models"
	"github.com/thomas-vilte/cz-mate/internal/domain/ports"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
	"github.com/thomas-vilte/cz-mate/internal/registry"
	"github.com/thomas-vilte/cz-mate/internal/ui"
)

// CommandFactory builds the check command: validate a commit message
// against the configured convention and report how it would be classified.
// The message comes from the --message flag, a file argument or stdin, in
// that order; git itself is never touched.
type CommandFactory struct {
	conventions *registry.Registry
	input       io.Reader
}

func NewCheckCommandFactory(conventions *registry.Registry) *CommandFactory {
	return &CommandFactory{
		conventions: conventions,
		input:       os.Stdin,
	}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     t.GetMessage("check.command_usage", 0, nil),
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("check.flag_message", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "major-zero",
				Usage: t.GetMessage("check.flag_major_zero", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conv, err := f.conventions.Get(cfg.Convention)
			if err != nil {
				return err
			}

			raw, err := f.readMessage(cmd)
			if err != nil {
				return err
			}
			if raw == "" {
				return fmt.Errorf("%s", t.GetMessage("check.empty_input", 0, nil))
			}

			record, err := conv.ParseMessage(raw)
			if err != nil {
				return fmt.Errorf("%s", t.GetMessage("check.invalid", 0, map[string]interface{}{
					"Error": err.Error(),
				}))
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("check.valid", 0, nil))
			printRecord(conv, record, raw, cmd.Bool("major-zero") || cfg.MajorVersionZero, t)
			return nil
		},
	}
}

func (f *CommandFactory) readMessage(cmd *cli.Command) (string, error) {
	if message := cmd.String("message"); message != "" {
		return strings.TrimSpace(message), nil
	}

	if file := cmd.Args().First(); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("error reading the message file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	data, err := io.ReadAll(f.input)
	if err != nil {
		return "", fmt.Errorf("error reading the message from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func printRecord(conv ports.Convention, record models.CommitRecord, raw string, majorZero bool, t *i18n.Translations) {
	label := func(id string) string { return t.GetMessage(id, 0, nil) }

	scope := record.Scope
	if scope == "" {
		scope = "-"
	}
	breaking := "no"
	if record.IsBreaking {
		breaking = "yes"
	}

	fmt.Printf("  %s: %s\n", label("check.type_label"), record.Type)
	fmt.Printf("  %s: %s\n", label("check.scope_label"), scope)
	fmt.Printf("  %s: %s\n", label("check.subject_label"), record.Subject)
	fmt.Printf("  %s: %s\n", label("check.breaking_label"), breaking)

	severity := conv.SeverityFor(record.Type)
	if classifier, ok := conv.(ports.BumpClassifier); ok {
		severity = classifier.BumpSeverity(record, majorZero)
	}
	fmt.Printf("  %s: %s\n", label("check.severity_label"), severity)

	if sections, ok := conv.(ports.ChangelogSections); ok {
		section := sections.SectionTitle(record.Type)
		if record.IsBreaking {
			section = sections.SectionTitle(models.TypeBreaking)
		}
		if section == "" || !sections.IncludeInChangelog(raw) {
			section = ui.Dim.Sprint(label("check.not_in_changelog"))
		}
		fmt.Printf("  %s: %s\n", label("check.section_label"), section)
	}
}
