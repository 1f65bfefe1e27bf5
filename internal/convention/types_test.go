package convention

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomas-vilte/cz-mate/internal/config"
	"github.com/thomas-vilte/cz-mate/internal/domain/models"
)

func TestSeverityFor(t *testing.T) {
	conv := newTestConvention(t, config.StrictnessStrict)

	t.Run("should be total over the vocabulary", func(t *testing.T) {
		valid := map[models.Severity]bool{
			models.SeverityMajor: true,
			models.SeverityMinor: true,
			models.SeverityPatch: true,
			models.SeverityNone:  true,
		}
		for _, info := range typeTable {
			assert.True(t, valid[conv.SeverityFor(info.key)], string(info.key))
		}
	})

	t.Run("should map feat to minor and fix to patch", func(t *testing.T) {
		assert.Equal(t, models.SeverityMinor, conv.SeverityFor(models.TypeFeat))
		assert.Equal(t, models.SeverityPatch, conv.SeverityFor(models.TypeFix))
	})

	t.Run("should map breaking to major", func(t *testing.T) {
		assert.Equal(t, models.SeverityMajor, conv.SeverityFor(models.TypeBreaking))
	})

	t.Run("should map unrecognized to none", func(t *testing.T) {
		assert.Equal(t, models.SeverityNone, conv.SeverityFor(models.TypeUnrecognized))
		assert.Equal(t, models.SeverityNone, conv.SeverityFor(models.CommitType("revert")))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		assert.Equal(t, conv.SeverityFor(models.TypeFeat), conv.SeverityFor(models.TypeFeat))
	})
}

func TestSeverityForMajorZero(t *testing.T) {
	conv := newTestConvention(t, config.StrictnessStrict)

	t.Run("should downgrade breaking to minor", func(t *testing.T) {
		assert.Equal(t, models.SeverityMinor, conv.SeverityForMajorZero(models.TypeBreaking))
	})

	t.Run("should keep feat at minor and fix at patch", func(t *testing.T) {
		assert.Equal(t, models.SeverityMinor, conv.SeverityForMajorZero(models.TypeFeat))
		assert.Equal(t, models.SeverityPatch, conv.SeverityForMajorZero(models.TypeFix))
	})
}

func TestBumpSeverity(t *testing.T) {
	conv := newTestConvention(t, config.StrictnessStrict)

	t.Run("should let the breaking flag win over the type", func(t *testing.T) {
		record := models.CommitRecord{Type: models.TypeChore, IsBreaking: true}

		assert.Equal(t, models.SeverityMajor, conv.BumpSeverity(record, false))
		assert.Equal(t, models.SeverityMinor, conv.BumpSeverity(record, true))
	})

	t.Run("should fall back to the type severity", func(t *testing.T) {
		record := models.CommitRecord{Type: models.TypePerf}

		assert.Equal(t, models.SeverityPatch, conv.BumpSeverity(record, false))
	})

	t.Run("should classify unrecognized as none", func(t *testing.T) {
		record := models.CommitRecord{Type: models.TypeUnrecognized}

		assert.Equal(t, models.SeverityNone, conv.BumpSeverity(record, false))
	})
}

func TestSectionTitle(t *testing.T) {
	t.Run("should return plain titles without emoji", func(t *testing.T) {
		conv := newTestConvention(t, config.StrictnessStrict)

		assert.Equal(t, "Feat", conv.SectionTitle(models.TypeFeat))
		assert.Equal(t, "BREAKING CHANGE", conv.SectionTitle(models.TypeBreaking))
		assert.Equal(t, "", conv.SectionTitle(models.TypeUnrecognized))
	})

	t.Run("should prefix emoji when configured", func(t *testing.T) {
		conv := newTestConvention(t, config.StrictnessStrict)
		conv.cfg.UseEmoji = true

		assert.Equal(t, "🐛 Fix", conv.SectionTitle(models.TypeFix))
	})
}

func TestSectionOrder(t *testing.T) {
	conv := newTestConvention(t, config.StrictnessStrict)

	t.Run("should start with breaking changes", func(t *testing.T) {
		order := conv.SectionOrder()

		assert.Equal(t, "BREAKING CHANGE", order[0])
		assert.Len(t, order, len(typeTable)+1)
	})

	t.Run("should hand out a copy", func(t *testing.T) {
		order := conv.SectionOrder()
		order[0] = "mutated"

		assert.Equal(t, "BREAKING CHANGE", conv.SectionOrder()[0])
	})
}

func TestQuestions(t *testing.T) {
	conv := newTestConvention(t, config.StrictnessStrict)

	t.Run("should keep the fixed question order", func(t *testing.T) {
		questions := conv.Questions()

		ids := make([]string, 0, len(questions))
		for _, q := range questions {
			ids = append(ids, q.ID)
		}
		assert.Equal(t, []string{"type", "scope", "subject", "body", "breaking", "breaking_detail"}, ids)
	})

	t.Run("should offer the full vocabulary as type choices", func(t *testing.T) {
		questions := conv.Questions()

		assert.Equal(t, models.PromptSelect, questions[0].Kind)
		assert.Len(t, questions[0].Choices, len(typeTable))
		assert.True(t, questions[0].Required)
	})

	t.Run("should bound the subject length from the config", func(t *testing.T) {
		questions := conv.Questions()

		assert.Equal(t, 72, questions[2].MaxLength)
		assert.True(t, questions[2].Required)
	})

	t.Run("should gate the breaking detail behind the confirm", func(t *testing.T) {
		questions := conv.Questions()

		assert.Equal(t, models.PromptConfirm, questions[4].Kind)
		assert.Equal(t, "breaking", questions[5].EnabledBy)
	})
}
