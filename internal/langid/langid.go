// Package langid provides the language-identification collaborator used to
// route scoring between the learned classifier and the rule-based fallback.
package langid

import "unicode"

// Langs recognized by the script detector.
const (
	Russian = "ru"
	English = "en"
)

// ScriptDetector identifies the dominant language by script: a Cyrillic
// majority among letters means Russian, otherwise any letters mean English.
// Texts with no letters at all are undetectable and route to the fallback
// branch.
type ScriptDetector struct{}

func NewScriptDetector() ScriptDetector { return ScriptDetector{} }

func (ScriptDetector) Detect(text string) (string, bool) {
	var cyrillic, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Cyrillic, r) {
			cyrillic++
		}
	}
	if letters == 0 {
		return "", false
	}
	if cyrillic*2 > letters {
		return Russian, true
	}
	return English, true
}
