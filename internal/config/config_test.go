package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/thomas-vilte/cz-mate/internal/domain/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should create default config when file does not exist", func(t *testing.T) {
		// arrange
		home := t.TempDir()

		// act
		cfg, err := LoadConfig(home)

		// assert
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, DefaultConvention, cfg.Convention)
		assert.Equal(t, StrictnessStrict, cfg.Strictness)
		assert.Equal(t, 72, cfg.MaxSubjectLength)
		assert.Equal(t, "CHANGELOG.md", cfg.ChangelogFile)
		assert.Equal(t, SchemeSemVer, cfg.VersionScheme)
		assert.FileExists(t, filepath.Join(home, ".cz-mate", "config.json"))
	})

	t.Run("should load existing config file", func(t *testing.T) {
		// arrange
		configPath := filepath.Join(t.TempDir(), "config.json")
		existing := &Config{
			Language:         "es",
			Convention:       DefaultConvention,
			Strictness:       StrictnessLenient,
			MaxSubjectLength: 50,
			PathFile:         configPath,
			VersionScheme:    SchemeSemVer,
		}
		data, err := json.Marshal(existing)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configPath, data, 0644))

		// act
		cfg, err := LoadConfig(configPath)

		// assert
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, StrictnessLenient, cfg.Strictness)
		assert.Equal(t, 50, cfg.MaxSubjectLength)
	})

	t.Run("should fill fallbacks for older config files", func(t *testing.T) {
		// arrange
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"language": "en"}`), 0644))

		// act
		cfg, err := LoadConfig(configPath)

		// assert
		require.NoError(t, err)
		assert.Equal(t, DefaultConvention, cfg.Convention)
		assert.Equal(t, StrictnessStrict, cfg.Strictness)
		assert.Equal(t, 72, cfg.MaxSubjectLength)
	})

	t.Run("should reject invalid strictness", func(t *testing.T) {
		// arrange
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"strictness": "sloppy"}`), 0644))

		// act
		_, err := LoadConfig(configPath)

		// assert
		require.Error(t, err)
		var configErr *domainErrors.ConfigError
		assert.ErrorAs(t, err, &configErr)
		assert.Equal(t, "strictness", configErr.Field)
	})
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Strictness:       StrictnessStrict,
			MaxSubjectLength: 72,
			VersionScheme:    SchemeSemVer,
		}
	}

	t.Run("should accept a valid config", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(valid()))
	})

	t.Run("should reject a too small subject limit", func(t *testing.T) {
		cfg := valid()
		cfg.MaxSubjectLength = 5

		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("should reject unknown version scheme", func(t *testing.T) {
		cfg := valid()
		cfg.VersionScheme = "romver"

		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("should reject github owner without name", func(t *testing.T) {
		cfg := valid()
		cfg.GitHub.Owner = "thomas-vilte"

		assert.Error(t, ValidateConfig(cfg))
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should round trip through disk", func(t *testing.T) {
		// arrange
		configPath := filepath.Join(t.TempDir(), "config.json")
		cfg := &Config{
			Language:         "en",
			Convention:       DefaultConvention,
			Strictness:       StrictnessLenient,
			MaxSubjectLength: 80,
			PathFile:         configPath,
			VersionScheme:    SchemeSemVer,
			GitHub:           GitHubConfig{Owner: "thomas-vilte", Name: "cz-mate"},
		}

		// act
		err := SaveConfig(cfg)
		require.NoError(t, err)
		loaded, err := LoadConfig(configPath)

		// assert
		require.NoError(t, err)
		assert.Equal(t, cfg.Strictness, loaded.Strictness)
		assert.Equal(t, cfg.MaxSubjectLength, loaded.MaxSubjectLength)
		assert.Equal(t, cfg.GitHub, loaded.GitHub)
	})
}

func TestGetLocaleConfig(t *testing.T) {
	t.Run("should keep supported languages", func(t *testing.T) {
		assert.Equal(t, LangES, GetLocaleConfig("es"))
	})

	t.Run("should fall back to english", func(t *testing.T) {
		assert.Equal(t, LangEN, GetLocaleConfig("fr"))
	})
}
