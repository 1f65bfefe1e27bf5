package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("should fall back to embedded defaults without locales dir", func(t *testing.T) {
		translations, err := NewTranslations("en", t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, "A new feature", translations.GetMessage("type.feat", 0, nil))
	})

	t.Run("should load spanish locale", func(t *testing.T) {
		translations, err := NewTranslations("es", "../../locales")

		require.NoError(t, err)
		assert.Equal(t, "Una nueva funcionalidad", translations.GetMessage("type.feat", 0, nil))
	})
}

func TestGetMessage(t *testing.T) {
	t.Run("should interpolate template data", func(t *testing.T) {
		translations, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		msg := translations.GetMessage("commit.written", 0, map[string]interface{}{
			"File": "COMMIT_EDITMSG",
		})

		assert.Equal(t, "Message written to COMMIT_EDITMSG", msg)
	})

	t.Run("should report missing message ids", func(t *testing.T) {
		translations, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		msg := translations.GetMessage("does.not.exist", 0, nil)

		assert.Equal(t, "Translation missing: does.not.exist", msg)
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("should switch between loaded languages", func(t *testing.T) {
		translations, err := NewTranslations("en", "../../locales")
		require.NoError(t, err)

		require.NoError(t, translations.SetLanguage("es"))
		assert.Equal(t, "Una corrección de bug", translations.GetMessage("type.fix", 0, nil))
	})

	t.Run("should reject unsupported language", func(t *testing.T) {
		translations, err := NewTranslations("en", t.TempDir())
		require.NoError(t, err)

		assert.Error(t, translations.SetLanguage("fr"))
	})
}
