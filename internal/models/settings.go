package models

// ArticleType categorizes the kind of article being generated
type ArticleType string

const (
	ArticleTypeNone         ArticleType = "None"
	ArticleTypeHowToGuide   ArticleType = "How-to Guide"
	ArticleTypeListicle     ArticleType = "Listicle"
	ArticleTypeReview       ArticleType = "Product Review"
	ArticleTypeNews         ArticleType = "News Article"
	ArticleTypeCaseStudy    ArticleType = "Case Study"
	ArticleTypeOpinion      ArticleType = "Opinion Piece"
	ArticleTypeTutorial     ArticleType = "Tutorial"
	ArticleTypeComparison   ArticleType = "Comparison"
	ArticleTypeInterview    ArticleType = "Interview"
	ArticleTypePressRelease ArticleType = "Press Release"
)

// ArticleSize controls the target length of the generated article
type ArticleSize string

const (
	SizeXSmall ArticleSize = "X-Small"
	SizeSmall  ArticleSize = "Small"
	SizeMedium ArticleSize = "Medium"
	SizeLarge  ArticleSize = "Large"
)

// Tone is the requested writing tone; None leaves it to the model
type Tone string

const (
	ToneNone          Tone = "None"
	ToneFriendly      Tone = "Friendly"
	ToneProfessional  Tone = "Professional"
	ToneInformational Tone = "Informational"
	ToneTransactional Tone = "Transactional"
	ToneInspirational Tone = "Inspirational"
	ToneNeutral       Tone = "Neutral"
	ToneWitty         Tone = "Witty"
	ToneCasual        Tone = "Casual"
	ToneAuthoritative Tone = "Authoritative"
	ToneEncouraging   Tone = "Encouraging"
	TonePersuasive    Tone = "Persuasive"
	ToneHumorous      Tone = "Humorous"
)

// PointOfView selects the grammatical person of the article
type PointOfView string

const (
	POVNone                PointOfView = "None"
	POVFirstPersonSingular PointOfView = "First Person Singular"
	POVFirstPersonPlural   PointOfView = "First Person Plural"
	POVSecondPerson        PointOfView = "Second Person"
	POVThirdPerson         PointOfView = "Third Person"
)

// Readability targets a reading level for the generated text
type Readability string

const (
	ReadabilityNone        Readability = "None"
	ReadabilityGrade5      Readability = "5th Grade"
	ReadabilityGrade6      Readability = "6th Grade"
	ReadabilityGrade7      Readability = "7th Grade"
	ReadabilityGrade8to9   Readability = "8th-9th Grade"
	ReadabilityGrade10to12 Readability = "10th-12th Grade"
	ReadabilityCollege     Readability = "College"
	ReadabilityGraduate    Readability = "College Graduate"
	ReadabilityPro         Readability = "Professional"
)

// AICleaning controls how aggressively AI-sounding phrasing is stripped
type AICleaning string

const (
	CleaningNone     AICleaning = "None"
	CleaningBasic    AICleaning = "Basic Cleaning"
	CleaningExtended AICleaning = "Extended Cleaning"
)

// ValidArticleTypes defines allowed article type values
var ValidArticleTypes = map[ArticleType]bool{
	ArticleTypeNone:         true,
	ArticleTypeHowToGuide:   true,
	ArticleTypeListicle:     true,
	ArticleTypeReview:       true,
	ArticleTypeNews:         true,
	ArticleTypeCaseStudy:    true,
	ArticleTypeOpinion:      true,
	ArticleTypeTutorial:     true,
	ArticleTypeComparison:   true,
	ArticleTypeInterview:    true,
	ArticleTypePressRelease: true,
}

// ValidSizes defines allowed article size values
var ValidSizes = map[ArticleSize]bool{
	SizeXSmall: true,
	SizeSmall:  true,
	SizeMedium: true,
	SizeLarge:  true,
}

// ValidTones defines allowed tone values
var ValidTones = map[Tone]bool{
	ToneNone:          true,
	ToneFriendly:      true,
	ToneProfessional:  true,
	ToneInformational: true,
	ToneTransactional: true,
	ToneInspirational: true,
	ToneNeutral:       true,
	ToneWitty:         true,
	ToneCasual:        true,
	ToneAuthoritative: true,
	ToneEncouraging:   true,
	TonePersuasive:    true,
	ToneHumorous:      true,
}

// ValidPointsOfView defines allowed point-of-view values
var ValidPointsOfView = map[PointOfView]bool{
	POVNone:                true,
	POVFirstPersonSingular: true,
	POVFirstPersonPlural:   true,
	POVSecondPerson:        true,
	POVThirdPerson:         true,
}

// ValidReadabilities defines allowed readability values
var ValidReadabilities = map[Readability]bool{
	ReadabilityNone:        true,
	ReadabilityGrade5:      true,
	ReadabilityGrade6:      true,
	ReadabilityGrade7:      true,
	ReadabilityGrade8to9:   true,
	ReadabilityGrade10to12: true,
	ReadabilityCollege:     true,
	ReadabilityGraduate:    true,
	ReadabilityPro:         true,
}

// ValidCleaningLevels defines allowed AI cleaning values
var ValidCleaningLevels = map[AICleaning]bool{
	CleaningNone:     true,
	CleaningBasic:    true,
	CleaningExtended: true,
}

// StructureFlags toggles structural elements of the generated article.
// Field order here is the order their labels appear in the compiled prompt.
type StructureFlags struct {
	Conclusion   bool `json:"conclusion"`
	FAQSection   bool `json:"faqSection"`
	Tables       bool `json:"tables"`
	H3Headings   bool `json:"h3Headings"`
	Lists        bool `json:"lists"`
	Italics      bool `json:"italics"`
	Bold         bool `json:"bold"`
	Quotes       bool `json:"quotes"`
	KeyTakeaways bool `json:"keyTakeaways"`
}

// Settings is the validated configuration for one article generation request.
// Treat it as immutable once validated.
type Settings struct {
	Title       string         `json:"title"`
	Keywords    string         `json:"keywords"` // comma-separated, stored raw
	ArticleType ArticleType    `json:"article_type"`
	ArticleSize ArticleSize    `json:"article_size"`
	Tone        Tone           `json:"tone"`
	PointOfView PointOfView    `json:"point_of_view"`
	Readability Readability    `json:"readability"`
	AICleaning  AICleaning     `json:"ai_cleaning"`
	Structure   StructureFlags `json:"structure"`
	Language    string         `json:"language"`
}

// MaxTitleLength is the maximum allowed title length in characters
const MaxTitleLength = 200

// MaxKeywordsLength is the maximum allowed keywords string length in characters
const MaxKeywordsLength = 500

// IsNeutral reports whether the tone axis should contribute no prompt clause
func (t Tone) IsNeutral() bool { return t == ToneNone || t == "" }

// IsNeutral reports whether the point-of-view axis should contribute no prompt clause
func (p PointOfView) IsNeutral() bool { return p == POVNone || p == "" }

// IsNeutral reports whether the readability axis should contribute no prompt clause
func (r Readability) IsNeutral() bool { return r == ReadabilityNone || r == "" }

// IsNeutral reports whether the cleaning axis should contribute no prompt clause
func (a AICleaning) IsNeutral() bool { return a == CleaningNone || a == "" }

// IsNeutral reports whether the article type should contribute no prompt clause
func (a ArticleType) IsNeutral() bool { return a == ArticleTypeNone || a == "" }
