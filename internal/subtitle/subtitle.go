// Package subtitle parses SRT and ASS timed-text files into cue sequences
// and strips non-spoken annotation from cue text.
package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cue is one timed line of a transcript. Times are absolute milliseconds
// from the start of the file.
type Cue struct {
	StartMS int64
	EndMS   int64
	Text    string
}

// DurationMS returns the cue's timing span in milliseconds.
func (c Cue) DurationMS() int64 {
	return c.EndMS - c.StartMS
}

// Recognized reports whether path has a supported subtitle extension.
func Recognized(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".ass":
		return true
	}
	return false
}

// ParseFile reads path and dispatches on its extension. Unrecognized
// extensions yield no cues and no error; a malformed file returns the
// cues parsed before the failure alongside the error.
func ParseFile(path string) ([]Cue, error) {
	var parse func(string) ([]Cue, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		parse = parseSRTFile
	case ".ass":
		parse = parseASSFile
	default:
		return nil, nil
	}
	return parse(path)
}

func parseSRTFile(path string) ([]Cue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer f.Close()
	return ParseSRT(f)
}

func parseASSFile(path string) ([]Cue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer f.Close()
	return ParseASS(f)
}
