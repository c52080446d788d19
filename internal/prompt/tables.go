package prompt

import (
	"github.com/article-writer-api/internal/models"
)

// sizeSpec holds the target ranges for one article size
type sizeSpec struct {
	MinWords    int
	MaxWords    int
	MinHeadings int
	MaxHeadings int
}

var sizeSpecs = map[models.ArticleSize]sizeSpec{
	models.SizeXSmall: {MinWords: 600, MaxWords: 1200, MinHeadings: 2, MaxHeadings: 5},
	models.SizeSmall:  {MinWords: 1200, MaxWords: 2400, MinHeadings: 5, MaxHeadings: 8},
	models.SizeMedium: {MinWords: 2400, MaxWords: 3600, MinHeadings: 9, MaxHeadings: 12},
	models.SizeLarge:  {MinWords: 3600, MaxWords: 5200, MinHeadings: 13, MaxHeadings: 16},
}

// DefaultTokenBudget is used when the size has no budget entry
const DefaultTokenBudget = 4000

var tokenBudgets = map[models.ArticleSize]int{
	models.SizeXSmall: 2000,
	models.SizeSmall:  4000,
	models.SizeMedium: 6000,
	models.SizeLarge:  8000,
}

var toneClauses = map[models.Tone]string{
	models.ToneFriendly:      "Friendly - write in a warm, approachable voice, as if talking to a friend",
	models.ToneProfessional:  "Professional - maintain a polished, businesslike voice throughout",
	models.ToneInformational: "Informational - focus on conveying facts clearly and without embellishment",
	models.ToneTransactional: "Transactional - write with a clear orientation toward action and decision-making",
	models.ToneInspirational: "Inspirational - uplift the reader and emphasize possibility and motivation",
	models.ToneNeutral:       "Neutral - keep the voice balanced and free of emotional coloring",
	models.ToneWitty:         "Witty - use clever wordplay and light humor where appropriate",
	models.ToneCasual:        "Casual - keep the language relaxed, conversational and informal",
	models.ToneAuthoritative: "Authoritative - write with confidence and demonstrated expertise",
	models.ToneEncouraging:   "Encouraging - support the reader and reinforce that they can succeed",
	models.TonePersuasive:    "Persuasive - build a compelling case and guide the reader toward agreement",
	models.ToneHumorous:      "Humorous - entertain the reader with playful, funny phrasing",
}

var povClauses = map[models.PointOfView]string{
	models.POVFirstPersonSingular: "First person singular - use I, me, my and mine",
	models.POVFirstPersonPlural:   "First person plural - use we, us, our and ours",
	models.POVSecondPerson:        "Second person - address the reader directly with you, your and yours",
	models.POVThirdPerson:         "Third person - use he, she, it and they; never address the reader directly",
}

var readabilityClauses = map[models.Readability]string{
	models.ReadabilityGrade5:      "5th grade level - very simple vocabulary, easily understood by 11-year-olds",
	models.ReadabilityGrade6:      "6th grade level - simple vocabulary, conversational sentence structure",
	models.ReadabilityGrade7:      "7th grade level - fairly easy to read with everyday vocabulary",
	models.ReadabilityGrade8to9:   "8th-9th grade level - plain English, easily understood by most adults",
	models.ReadabilityGrade10to12: "10th-12th grade level - fairly difficult, suitable for high-school seniors",
	models.ReadabilityCollege:     "College level - difficult prose for an academically inclined audience",
	models.ReadabilityGraduate:    "College graduate level - very difficult prose with specialized vocabulary",
	models.ReadabilityPro:         "Professional level - extremely dense prose for domain experts",
}

var cleaningClauses = map[models.AICleaning]string{
	models.CleaningBasic:    "Avoid common AI-sounding words and phrases such as 'delve', 'unleash', 'in today's fast-paced world' and 'it's important to note'",
	models.CleaningExtended: "Aggressively remove all AI-sounding phrasing: no filler transitions, no hedging, no formulaic openers or closers, no stock metaphors; every sentence must read as if written by a human subject-matter expert",
}

// structureLabels maps each structure flag to its prompt label, in the order
// the flags are declared on models.StructureFlags.
var structureLabels = []struct {
	Label   string
	Enabled func(models.StructureFlags) bool
}{
	{"Conclusion", func(f models.StructureFlags) bool { return f.Conclusion }},
	{"FAQ Section", func(f models.StructureFlags) bool { return f.FAQSection }},
	{"Tables", func(f models.StructureFlags) bool { return f.Tables }},
	{"H3 Headings", func(f models.StructureFlags) bool { return f.H3Headings }},
	{"Lists", func(f models.StructureFlags) bool { return f.Lists }},
	{"Italics", func(f models.StructureFlags) bool { return f.Italics }},
	{"Bold", func(f models.StructureFlags) bool { return f.Bold }},
	{"Quotes", func(f models.StructureFlags) bool { return f.Quotes }},
	{"Key Takeaways", func(f models.StructureFlags) bool { return f.KeyTakeaways }},
}

const contentGuidelines = `Content guidelines:
1. Open with a hook that makes the reader want to continue.
2. Every H2 section must deliver standalone value; no filler sections.
3. Back up claims with concrete examples, numbers or scenarios.
4. Vary sentence length; mix short punchy sentences with longer ones.
5. Use transition sentences between sections so the article flows as one piece.
6. Never repeat the same point in different words to pad length.
7. Write actionable advice the reader can apply immediately.
8. Prefer active voice over passive voice.
9. Do not invent statistics, studies or quotes.
10. Stay strictly on the topic given by the title and keywords.`

const seoRequirements = `SEO requirements:
- Maintain a keyword density of 1-2% for the primary keywords.
- Use semantic HTML-style structure: a single H1, H2 section headings, H3 subheadings where enabled.
- Work keywords naturally into headings where possible; never stuff keywords.
- Provide a meta title of at most 60 characters.
- Provide a meta description between 120 and 160 characters.`

const closingInstruction = `Output the article in the following order: first the meta title, then the meta description, then the full article content. Honor every requirement listed above.`
