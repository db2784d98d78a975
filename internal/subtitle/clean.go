package subtitle

import (
	"regexp"
	"strings"
)

// Non-spoken annotation found in broadcast subtitles: styling override
// blocks, speaker labels and sound descriptions in parentheses or square
// brackets, and music-note markers around song lyrics.
var (
	overrideTags = regexp.MustCompile(`\{[^}]*\}`)
	parenNotes   = regexp.MustCompile(`（[^）]*）|\([^)]*\)`)
	bracketNotes = regexp.MustCompile(`［[^］]*］|\[[^\]]*\]`)
	musicMarks   = regexp.MustCompile(`[♪♫♬]+`)
)

// StripNonspoken removes annotation markup from a subtitle line,
// preserving the spoken content.
func StripNonspoken(text string) string {
	text = overrideTags.ReplaceAllString(text, "")
	text = parenNotes.ReplaceAllString(text, "")
	text = bracketNotes.ReplaceAllString(text, "")
	text = musicMarks.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
