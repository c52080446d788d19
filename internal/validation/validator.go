package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/article-writer-api/internal/models"
)

// ValidationError represents a single field-level validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateSettings checks a generation request against the fixed option sets.
// It returns every violation, not just the first, so the caller can surface
// field-level detail in one response.
func ValidateSettings(s *models.Settings) []ValidationError {
	var errors []ValidationError

	title := strings.TrimSpace(s.Title)
	if title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if utf8.RuneCountInString(title) > models.MaxTitleLength {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title exceeds maximum of %d characters", models.MaxTitleLength),
		})
	}

	keywords := strings.TrimSpace(s.Keywords)
	if keywords == "" {
		errors = append(errors, ValidationError{Field: "keywords", Message: "keywords are required"})
	} else if utf8.RuneCountInString(keywords) > models.MaxKeywordsLength {
		errors = append(errors, ValidationError{
			Field:   "keywords",
			Message: fmt.Sprintf("keywords exceed maximum of %d characters", models.MaxKeywordsLength),
		})
	}

	if !s.ArticleType.IsNeutral() && !models.ValidArticleTypes[s.ArticleType] {
		errors = append(errors, ValidationError{Field: "article_type", Message: "invalid article type", Value: s.ArticleType})
	}
	if !models.ValidSizes[s.ArticleSize] {
		errors = append(errors, ValidationError{
			Field:   "article_size",
			Message: "article size must be one of: X-Small, Small, Medium, Large",
			Value:   s.ArticleSize,
		})
	}
	if !s.Tone.IsNeutral() && !models.ValidTones[s.Tone] {
		errors = append(errors, ValidationError{Field: "tone", Message: "invalid tone", Value: s.Tone})
	}
	if !s.PointOfView.IsNeutral() && !models.ValidPointsOfView[s.PointOfView] {
		errors = append(errors, ValidationError{Field: "point_of_view", Message: "invalid point of view", Value: s.PointOfView})
	}
	if !s.Readability.IsNeutral() && !models.ValidReadabilities[s.Readability] {
		errors = append(errors, ValidationError{Field: "readability", Message: "invalid readability level", Value: s.Readability})
	}
	if !s.AICleaning.IsNeutral() && !models.ValidCleaningLevels[s.AICleaning] {
		errors = append(errors, ValidationError{Field: "ai_cleaning", Message: "invalid AI cleaning level", Value: s.AICleaning})
	}

	return errors
}

// Normalize fills neutral defaults for omitted optional axes so downstream
// code never sees empty strings where an enum is expected.
func Normalize(s *models.Settings) {
	if s.ArticleType == "" {
		s.ArticleType = models.ArticleTypeNone
	}
	if s.Tone == "" {
		s.Tone = models.ToneNone
	}
	if s.PointOfView == "" {
		s.PointOfView = models.POVNone
	}
	if s.Readability == "" {
		s.Readability = models.ReadabilityNone
	}
	if s.AICleaning == "" {
		s.AICleaning = models.CleaningNone
	}
	if s.Language == "" {
		s.Language = "en"
	}
}
