package commit

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/domain/models"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
	"github.com/thomas-vilte/cz-mate/internal/registry"
	"github.com/thomas-vilte/cz-mate/internal/ui"
)

// CommandFactory builds the interactive commit command. The question set
// comes from the configured convention; this command only renders it.
type CommandFactory struct {
	conventions *registry.Registry
	input       io.Reader
}

func NewCommitCommandFactory(conventions *registry.Registry) *CommandFactory {
	return &CommandFactory{
		conventions: conventions,
		input:       os.Stdin,
	}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "commit",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("commit.command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("commit.flag_output", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: t.GetMessage("commit.flag_dry_run", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conv, err := f.conventions.Get(cfg.Convention)
			if err != nil {
				return err
			}

			reader := bufio.NewReader(f.input)
			ui.PrintSectionBanner(t.GetMessage("commit.header", 0, nil))

			answers, err := askQuestions(reader, conv.Questions(), t)
			if err != nil {
				return err
			}

			message, err := conv.BuildMessage(answers)
			if err != nil {
				return err
			}

			fmt.Println()
			ui.PrintSectionBanner(t.GetMessage("commit.result_header", 0, nil))
			fmt.Println(message)

			if outputFile := cmd.String("output"); outputFile != "" && !cmd.Bool("dry-run") {
				if err := os.WriteFile(outputFile, []byte(message+"\n"), 0644); err != nil {
					return fmt.Errorf("error writing the commit message file: %w", err)
				}
				ui.PrintSuccess(os.Stdout, t.GetMessage("commit.written", 0, map[string]interface{}{
					"File": outputFile,
				}))
			}

			return nil
		},
	}
}

func askQuestions(reader *bufio.Reader, questions []models.PromptSpec, t *i18n.Translations) (map[string]string, error) {
	answers := make(map[string]string, len(questions))

	for _, question := range questions {
		if question.EnabledBy != "" && answers[question.EnabledBy] != "yes" {
			continue
		}

		var (
			answer string
			err    error
		)
		switch question.Kind {
		case models.PromptSelect:
			answer, err = askSelect(reader, question, t)
		case models.PromptConfirm:
			answer, err = askConfirm(reader, question)
		default:
			answer, err = askInput(reader, question, t)
		}
		if err != nil {
			return nil, err
		}
		answers[question.ID] = answer
	}

	return answers, nil
}

func askSelect(reader *bufio.Reader, question models.PromptSpec, t *i18n.Translations) (string, error) {
	fmt.Println()
	fmt.Println(question.Prompt)
	for i, choice := range question.Choices {
		fmt.Printf("  %2d) %-10s %s\n", i+1, choice.Value, ui.Dim.Sprint(choice.Label))
	}

	for {
		fmt.Printf("%s ", t.GetMessage("commit.select_hint", 0, nil))
		line, err := readLine(reader)
		if err != nil {
			return "", err
		}

		selection, convErr := strconv.Atoi(line)
		if convErr != nil || selection < 1 || selection > len(question.Choices) {
			ui.PrintWarning(t.GetMessage("commit.invalid_selection", 0, map[string]interface{}{
				"Max": len(question.Choices),
			}))
			continue
		}
		return question.Choices[selection-1].Value, nil
	}
}

func askConfirm(reader *bufio.Reader, question models.PromptSpec) (string, error) {
	fmt.Printf("\n%s [y/N]: ", question.Prompt)
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(line) {
	case "y", "yes", "si", "sí":
		return "yes", nil
	default:
		return "no", nil
	}
}

func askInput(reader *bufio.Reader, question models.PromptSpec, t *i18n.Translations) (string, error) {
	for {
		fmt.Printf("\n%s", question.Prompt)
		if !question.Required {
			fmt.Printf(" %s", ui.Dim.Sprint(t.GetMessage("commit.optional_hint", 0, nil)))
		}
		fmt.Print(": ")

		line, err := readLine(reader)
		if err != nil {
			return "", err
		}

		if line == "" && question.Required {
			ui.PrintWarning(t.GetMessage("commit.required_answer", 0, nil))
			continue
		}
		return line, nil
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading the answer: %w", err)
	}
	// input exhausted while a question is still waiting for an answer
	if err == io.EOF && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	return line, nil
}
