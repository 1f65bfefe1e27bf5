package check

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/convention"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
	"github.com/thomas-vilte/cz-mate/internal/registry"
)

func newTestApp(t *testing.T, stdin string) *cli.Command {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "../../../../locales")
	require.NoError(t, err)

	cfg := &config.Config{
		Convention:       config.DefaultConvention,
		Strictness:       config.StrictnessStrict,
		MaxSubjectLength: 72,
	}

	conventions := registry.NewRegistry(cfg, translations)
	require.NoError(t, conventions.Register(convention.Name, convention.NewFactory()))

	factory := &CommandFactory{
		conventions: conventions,
		input:       strings.NewReader(stdin),
	}

	return &cli.Command{
		Name:     "cz-mate",
		Commands: []*cli.Command{factory.CreateCommand(translations, cfg)},
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("should accept a conventional message from the flag", func(t *testing.T) {
		app := newTestApp(t, "")

		err := app.Run(context.Background(), []string{"cz-mate", "check", "-m", "feat(api): add login endpoint"})

		assert.NoError(t, err)
	})

	t.Run("should reject a non conventional message", func(t *testing.T) {
		app := newTestApp(t, "")

		err := app.Run(context.Background(), []string{"cz-mate", "check", "-m", "not a conventional commit"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not follow the required convention")
	})

	t.Run("should read the message from a file argument", func(t *testing.T) {
		// arrange
		messageFile := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
		require.NoError(t, os.WriteFile(messageFile, []byte("fix!: correct overflow\n"), 0644))
		app := newTestApp(t, "")

		// act
		err := app.Run(context.Background(), []string{"cz-mate", "check", messageFile})

		// assert
		assert.NoError(t, err)
	})

	t.Run("should read the message from stdin", func(t *testing.T) {
		app := newTestApp(t, "chore: tidy the makefile\n")

		err := app.Run(context.Background(), []string{"cz-mate", "check"})

		assert.NoError(t, err)
	})

	t.Run("should fail on empty input", func(t *testing.T) {
		app := newTestApp(t, "")

		err := app.Run(context.Background(), []string{"cz-mate", "check"})

		assert.Error(t, err)
	})
}
