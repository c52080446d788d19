// Package prompt compiles validated article settings into the instruction
// text sent to the text-generation service, plus an output token budget.
package prompt

import (
	"fmt"
	"strings"

	"github.com/article-writer-api/internal/language"
	"github.com/article-writer-api/internal/models"
)

// Compile deterministically maps settings to instruction text and a token
// budget. It performs no I/O. Unknown enumerated values are an error (they
// mean validation was bypassed); an unknown language code silently resolves
// to the default language name.
func Compile(s models.Settings) (string, int, error) {
	if err := checkEnums(s); err != nil {
		return "", 0, err
	}

	langName := language.DisplayName(s.Language)
	size := sizeSpecs[s.ArticleSize]

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Write a long-form article in %s.\n\n", langName))
	sb.WriteString(fmt.Sprintf("Title: %s\n", s.Title))
	sb.WriteString(fmt.Sprintf("Keywords: %s\n", s.Keywords))
	sb.WriteString(fmt.Sprintf("Target language: %s\n", langName))
	sb.WriteString(fmt.Sprintf("Word count: %d-%d words\n", size.MinWords, size.MaxWords))
	sb.WriteString(fmt.Sprintf("Number of H2 headings: %d-%d\n", size.MinHeadings, size.MaxHeadings))
	sb.WriteString(fmt.Sprintf("Use the following keywords throughout the article: %s\n", s.Keywords))

	if !s.ArticleType.IsNeutral() {
		sb.WriteString(fmt.Sprintf("Article Type: %s\n", s.ArticleType))
	}
	if !s.Tone.IsNeutral() {
		sb.WriteString(fmt.Sprintf("Tone of voice: %s\n", clauseOrRaw(toneClauses, s.Tone)))
	}
	if !s.PointOfView.IsNeutral() {
		sb.WriteString(fmt.Sprintf("Point of view: %s\n", clauseOrRaw(povClauses, s.PointOfView)))
	}
	if !s.Readability.IsNeutral() {
		sb.WriteString(fmt.Sprintf("Readability: %s\n", clauseOrRaw(readabilityClauses, s.Readability)))
	}
	if !s.AICleaning.IsNeutral() {
		sb.WriteString(fmt.Sprintf("Writing style: %s\n", clauseOrRaw(cleaningClauses, s.AICleaning)))
	}

	if line := includeLine(s.Structure); line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(contentGuidelines)
	sb.WriteString("\n\n")
	sb.WriteString(seoRequirements)
	sb.WriteString("\n\n")
	sb.WriteString(closingInstruction)
	sb.WriteString("\n")

	return sb.String(), TokenBudget(s.ArticleSize), nil
}

// TokenBudget maps an article size to the output token ceiling. The mapping
// is total: unknown sizes resolve to DefaultTokenBudget.
func TokenBudget(size models.ArticleSize) int {
	if budget, ok := tokenBudgets[size]; ok {
		return budget
	}
	return DefaultTokenBudget
}

// includeLine builds the "Include:" requirement line from the structure
// flags, in declared flag order. Empty when no flag is set.
func includeLine(f models.StructureFlags) string {
	var labels []string
	for _, entry := range structureLabels {
		if entry.Enabled(f) {
			labels = append(labels, entry.Label)
		}
	}
	if len(labels) == 0 {
		return ""
	}
	return "Include: " + strings.Join(labels, ", ")
}

// clauseOrRaw resolves a value through its clause table, falling back to the
// raw enumerated value when no clause is defined for it.
func clauseOrRaw[K comparable](table map[K]string, value K) string {
	if clause, ok := table[value]; ok {
		return clause
	}
	return fmt.Sprintf("%v", value)
}

// checkEnums rejects enumerated values outside their fixed sets. Language is
// deliberately exempt; it falls back to the default display name.
func checkEnums(s models.Settings) error {
	if !s.ArticleType.IsNeutral() && !models.ValidArticleTypes[s.ArticleType] {
		return fmt.Errorf("unknown article type %q", s.ArticleType)
	}
	if !models.ValidSizes[s.ArticleSize] {
		return fmt.Errorf("unknown article size %q", s.ArticleSize)
	}
	if !s.Tone.IsNeutral() && !models.ValidTones[s.Tone] {
		return fmt.Errorf("unknown tone %q", s.Tone)
	}
	if !s.PointOfView.IsNeutral() && !models.ValidPointsOfView[s.PointOfView] {
		return fmt.Errorf("unknown point of view %q", s.PointOfView)
	}
	if !s.Readability.IsNeutral() && !models.ValidReadabilities[s.Readability] {
		return fmt.Errorf("unknown readability %q", s.Readability)
	}
	if !s.AICleaning.IsNeutral() && !models.ValidCleaningLevels[s.AICleaning] {
		return fmt.Errorf("unknown AI cleaning level %q", s.AICleaning)
	}
	return nil
}
