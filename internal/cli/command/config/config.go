package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	cfgPkg "github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
	"github.com/thomas-vilte/cz-mate/internal/ui"
)

// CommandFactory builds the config command with its show and set
// subcommands.
type CommandFactory struct{}

func NewConfigCommandFactory() *CommandFactory {
	return &CommandFactory{}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, cfg *cfgPkg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config.command_usage", 0, nil),
		Commands: []*cli.Command{
			newShowCommand(t, cfg),
			newSetCommand(t, cfg),
		},
	}
}

func newShowCommand(t *i18n.Translations, cfg *cfgPkg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ui.PrintSectionBanner(t.GetMessage("config.current_header", 0, nil))
			fmt.Printf("  language:           %s\n", cfg.Language)
			fmt.Printf("  convention:         %s\n", cfg.Convention)
			fmt.Printf("  strictness:         %s\n", cfg.Strictness)
			fmt.Printf("  use_emoji:          %t\n", cfg.UseEmoji)
			fmt.Printf("  max_subject_length: %d\n", cfg.MaxSubjectLength)
			fmt.Printf("  tag_format:         %s\n", cfg.TagFormat)
			fmt.Printf("  changelog_file:     %s\n", cfg.ChangelogFile)
			fmt.Printf("  version_scheme:     %s\n", cfg.VersionScheme)
			fmt.Printf("  major_version_zero: %t\n", cfg.MajorVersionZero)
			fmt.Printf("  github.owner:       %s\n", cfg.GitHub.Owner)
			fmt.Printf("  github.name:        %s\n", cfg.GitHub.Name)
			fmt.Printf("  github.token:       %s\n", maskToken(cfg.GitHub.Token))
			return nil
		},
	}
}

func newSetCommand(t *i18n.Translations, cfg *cfgPkg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config.set_usage", 0, nil),
		ArgsUsage: "<key> <value>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			key := cmd.Args().Get(0)
			value := cmd.Args().Get(1)

			if err := applyValue(cfg, key, value, t); err != nil {
				return err
			}

			if err := cfgPkg.ValidateConfig(cfg); err != nil {
				return err
			}
			if err := cfgPkg.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config.saved", 0, nil))
			return nil
		},
	}
}

func applyValue(cfg *cfgPkg.Config, key, value string, t *i18n.Translations) error {
	switch key {
	case "language":
		cfg.Language = cfgPkg.GetLocaleConfig(value)
	case "convention":
		cfg.Convention = value
	case "strictness":
		cfg.Strictness = value
	case "use_emoji":
		cfg.UseEmoji = isTrue(value)
	case "max_subject_length":
		length, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_subject_length must be a number: %w", err)
		}
		cfg.MaxSubjectLength = length
	case "tag_format":
		cfg.TagFormat = value
	case "changelog_file":
		cfg.ChangelogFile = value
	case "version_scheme":
		cfg.VersionScheme = value
	case "major_version_zero":
		cfg.MajorVersionZero = isTrue(value)
	case "github.owner":
		cfg.GitHub.Owner = value
	case "github.name":
		cfg.GitHub.Name = value
	case "github.token":
		cfg.GitHub.Token = value
	default:
		return fmt.Errorf("%s", t.GetMessage("config.unknown_key", 0, map[string]interface{}{
			"Key": key,
		}))
	}
	return nil
}

func isTrue(value string) bool {
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}

func maskToken(token string) string {
	if token == "" {
		return "-"
	}
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "****" + token[len(token)-4:]
}
