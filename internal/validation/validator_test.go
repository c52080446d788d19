package validation

import (
	"strings"
	"testing"

	"github.com/article-writer-api/internal/models"
)

func validSettings() models.Settings {
	return models.Settings{
		Title:       "Ten Ways to Brew Better Coffee",
		Keywords:    "coffee,brewing,beans",
		ArticleType: models.ArticleTypeListicle,
		ArticleSize: models.SizeMedium,
		Tone:        models.ToneFriendly,
		PointOfView: models.POVSecondPerson,
		Readability: models.ReadabilityGrade8to9,
		AICleaning:  models.CleaningBasic,
		Language:    "en",
	}
}

func fieldErrors(errs []ValidationError) map[string]bool {
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	return fields
}

func TestValidateSettingsAccepted(t *testing.T) {
	s := validSettings()
	if errs := ValidateSettings(&s); len(errs) != 0 {
		t.Errorf("Valid settings rejected: %+v", errs)
	}
}

func TestValidateSettingsRequiredFields(t *testing.T) {
	s := validSettings()
	s.Title = "  "
	s.Keywords = ""

	fields := fieldErrors(ValidateSettings(&s))
	if !fields["title"] {
		t.Error("Blank title should be rejected")
	}
	if !fields["keywords"] {
		t.Error("Empty keywords should be rejected")
	}
}

func TestValidateSettingsLengthLimits(t *testing.T) {
	s := validSettings()
	s.Title = strings.Repeat("a", models.MaxTitleLength+1)
	s.Keywords = strings.Repeat("k", models.MaxKeywordsLength+1)

	fields := fieldErrors(ValidateSettings(&s))
	if !fields["title"] {
		t.Errorf("Title over %d chars should be rejected", models.MaxTitleLength)
	}
	if !fields["keywords"] {
		t.Errorf("Keywords over %d chars should be rejected", models.MaxKeywordsLength)
	}
}

func TestValidateSettingsEnums(t *testing.T) {
	s := validSettings()
	s.ArticleType = "Advertorial"
	s.ArticleSize = "Huge"
	s.Tone = "Sarcastic"
	s.PointOfView = "Fourth Person"
	s.Readability = "Kindergarten"
	s.AICleaning = "Maximum"

	fields := fieldErrors(ValidateSettings(&s))
	for _, field := range []string{"article_type", "article_size", "tone", "point_of_view", "readability", "ai_cleaning"} {
		if !fields[field] {
			t.Errorf("Invalid %s should be rejected", field)
		}
	}
}

func TestValidateSettingsNeutralAxes(t *testing.T) {
	s := validSettings()
	s.ArticleType = models.ArticleTypeNone
	s.Tone = models.ToneNone
	s.PointOfView = models.POVNone
	s.Readability = models.ReadabilityNone
	s.AICleaning = models.CleaningNone

	if errs := ValidateSettings(&s); len(errs) != 0 {
		t.Errorf("Neutral axes should be valid: %+v", errs)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	s := models.Settings{
		Title:       "A Title",
		Keywords:    "one,two",
		ArticleSize: models.SizeSmall,
	}
	Normalize(&s)

	if s.Tone != models.ToneNone {
		t.Errorf("Expected tone normalized to None, got %q", s.Tone)
	}
	if s.ArticleType != models.ArticleTypeNone {
		t.Errorf("Expected article type normalized to None, got %q", s.ArticleType)
	}
	if s.Language != "en" {
		t.Errorf("Expected language normalized to en, got %q", s.Language)
	}
	if errs := ValidateSettings(&s); len(errs) != 0 {
		t.Errorf("Normalized settings should validate: %+v", errs)
	}
}
