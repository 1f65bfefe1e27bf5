package conventions

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
	"github.com/thomas-vilte/cz-mate/internal/registry"
	"github.com/thomas-vilte/cz-mate/internal/ui"
)

// CommandFactory builds the command that lists the registered rule sets.
type CommandFactory struct {
	conventions *registry.Registry
}

func NewConventionsCommandFactory(conventions *registry.Registry) *CommandFactory {
	return &CommandFactory{conventions: conventions}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "conventions",
		Usage: t.GetMessage("conventions.command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ui.PrintSectionBanner(t.GetMessage("conventions.header", 0, nil))
			for _, name := range f.conventions.Names() {
				marker := " "
				if name == cfg.Convention {
					marker = "*"
				}
				fmt.Printf("  %s %s\n", marker, name)
			}
			return nil
		},
	}
}
