package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	checkCmd "github.com/thomas-vilte/cz-mate/internal/cli/command/check"
	commitCmd "github.com/thomas-vilte/cz-mate/internal/cli/command/commit"
	configCmd "github.com/thomas-vilte/cz-mate/internal/cli/command/config"
	conventionsCmd "github.com/thomas-vilte/cz-mate/internal/cli/command/conventions"
	decorateCmd "github.com/thomas-vilte/cz-mate/internal/cli/command/decorate"
	cliRegistry "github.com/thomas-vilte/cz-mate/internal/cli/registry"
	cfg "github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/convention"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
	"github.com/thomas-vilte/cz-mate/internal/registry"
	"github.com/thomas-vilte/cz-mate/internal/version"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error loading translations: %w", err)
	}

	conventions := registry.NewRegistry(cfgApp, translations)
	if err := conventions.Register(convention.Name, convention.NewFactory()); err != nil {
		return nil, fmt.Errorf("error registering the '%s' convention: %w", convention.Name, err)
	}

	commands := cliRegistry.NewRegistry(cfgApp, translations)

	if err := commands.Register("commit", commitCmd.NewCommitCommandFactory(conventions)); err != nil {
		log.Fatalf("Error registering the 'commit' command: %v", err)
	}

	if err := commands.Register("check", checkCmd.NewCheckCommandFactory(conventions)); err != nil {
		log.Fatalf("Error registering the 'check' command: %v", err)
	}

	if err := commands.Register("decorate", decorateCmd.NewDecorateCommandFactory(conventions)); err != nil {
		log.Fatalf("Error registering the 'decorate' command: %v", err)
	}

	if err := commands.Register("config", configCmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'config' command: %v", err)
	}

	if err := commands.Register("conventions", conventionsCmd.NewConventionsCommandFactory(conventions)); err != nil {
		log.Fatalf("Error registering the 'conventions' command: %v", err)
	}

	appCommands := commands.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	appCommands = append(appCommands, helpCommand)

	return &cli.Command{
		Name:                  "cz-mate",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              appCommands,
		EnableShellCompletion: true,
	}, nil
}
