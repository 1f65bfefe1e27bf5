package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/i18n"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name: m.name,
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "../../../locales")
	require.NoError(t, err)
	return NewRegistry(&config.Config{}, translations)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register new factory successfully", func(t *testing.T) {
		registry := newTestRegistry(t)
		factory := &mockCommandFactory{name: "check"}

		// act
		err := registry.Register("check", factory)

		// assert
		assert.NoError(t, err)
		assert.Len(t, registry.factories, 1)
		assert.Contains(t, registry.factories, "check")
	})

	t.Run("should return error when registering duplicate factory", func(t *testing.T) {
		// arrange
		registry := newTestRegistry(t)
		factory := &mockCommandFactory{name: "check"}

		// act
		_ = registry.Register("check", factory)
		err := registry.Register("check", factory)

		// assert
		assert.Error(t, err)
		assert.Len(t, registry.factories, 1)
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	t.Run("should create commands in name order", func(t *testing.T) {
		// arrange
		registry := newTestRegistry(t)
		_ = registry.Register("decorate", &mockCommandFactory{name: "decorate"})
		_ = registry.Register("check", &mockCommandFactory{name: "check"})

		// act
		commands := registry.CreateCommands()

		// assert
		require.Len(t, commands, 2)
		assert.Equal(t, "check", commands[0].Name)
		assert.Equal(t, "decorate", commands[1].Name)
	})

	t.Run("should return empty slice when no factories registered", func(t *testing.T) {
		registry := newTestRegistry(t)

		commands := registry.CreateCommands()

		assert.Empty(t, commands)
	})
}
