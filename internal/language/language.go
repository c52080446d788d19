// Package language owns the single language-code to display-name mapping
// shared by the prompt compiler and any presentation concern.
package language

// DefaultName is used for any unrecognized language code
const DefaultName = "English"

var displayNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"pl": "Polish",
	"sv": "Swedish",
	"da": "Danish",
	"no": "Norwegian",
	"fi": "Finnish",
	"ru": "Russian",
	"uk": "Ukrainian",
	"tr": "Turkish",
	"ar": "Arabic",
	"hi": "Hindi",
	"id": "Indonesian",
	"vi": "Vietnamese",
	"th": "Thai",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
}

// DisplayName resolves an ISO 639-1 code to its English display name,
// falling back to DefaultName for unknown codes.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return DefaultName
}

// Known reports whether the code has an explicit mapping
func Known(code string) bool {
	_, ok := displayNames[code]
	return ok
}
