package decorate

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/domain/ports"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
	"github.com/thomas-vilte/cz-mate/internal/registry"
	"github.com/thomas-vilte/cz-mate/internal/ui"
)

// CommandFactory builds the decorate command: run the convention's
// changelog hook over an existing changelog file, adding tag comparison
// links and commit links for collected breaking changes.
type CommandFactory struct {
	conventions *registry.Registry
}

func NewDecorateCommandFactory(conventions *registry.Registry) *CommandFactory {
	return &CommandFactory{conventions: conventions}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "decorate",
		Usage:     t.GetMessage("decorate.command_usage", 0, nil),
		ArgsUsage: "[changelog]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("decorate.flag_output", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conv, err := f.conventions.Get(cfg.Convention)
			if err != nil {
				return err
			}

			decorator, ok := conv.(ports.ChangelogDecorator)
			if !ok || cfg.GitHub.Owner == "" || cfg.GitHub.Name == "" {
				return fmt.Errorf("%s", t.GetMessage("decorate.repo_not_configured", 0, nil))
			}

			changelogFile := cmd.Args().First()
			if changelogFile == "" {
				changelogFile = cfg.ChangelogFile
			}

			data, err := os.ReadFile(changelogFile)
			if err != nil {
				return fmt.Errorf("error reading the changelog file: %w", err)
			}

			spin := ui.NewSmartSpinner(t.GetMessage("decorate.decorating", 0, nil))
			spin.Start()
			decorated := decorator.DecorateChangelog(string(data))
			spin.Stop()

			outputFile := cmd.String("output")
			if outputFile == "" {
				outputFile = changelogFile
			}
			if err := os.WriteFile(outputFile, []byte(decorated), 0644); err != nil {
				return fmt.Errorf("error writing the decorated changelog: %w", err)
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("decorate.done", 0, map[string]interface{}{
				"File": outputFile,
			}))
			return nil
		},
	}
}
