package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseASS reads Dialogue events from an Advanced SubStation Alpha file.
// Field order follows the Format line of the [Events] section; dialogue
// text keeps embedded commas because only the fields before it may split.
func ParseASS(r io.Reader) ([]Cue, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var cues []Cue
	inEvents := false
	startIdx, endIdx, textIdx, fieldCount := -1, -1, -1, 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "\uFEFF")

		if strings.HasPrefix(line, "[") {
			inEvents = strings.EqualFold(line, "[Events]")
			continue
		}
		if !inEvents {
			continue
		}

		if rest, ok := cutPrefixFold(line, "Format:"); ok {
			fields := strings.Split(rest, ",")
			fieldCount = len(fields)
			startIdx, endIdx, textIdx = -1, -1, -1
			for i, field := range fields {
				switch strings.TrimSpace(field) {
				case "Start":
					startIdx = i
				case "End":
					endIdx = i
				case "Text":
					textIdx = i
				}
			}
			continue
		}

		rest, ok := cutPrefixFold(line, "Dialogue:")
		if !ok {
			continue
		}
		if startIdx < 0 || endIdx < 0 || textIdx < 0 {
			continue // no Format line seen yet
		}

		fields := strings.SplitN(rest, ",", fieldCount)
		if len(fields) <= textIdx || len(fields) <= startIdx || len(fields) <= endIdx {
			continue
		}
		start, err := assTimeMS(strings.TrimSpace(fields[startIdx]))
		if err != nil {
			continue
		}
		end, err := assTimeMS(strings.TrimSpace(fields[endIdx]))
		if err != nil {
			continue
		}

		text := fields[textIdx]
		text = strings.ReplaceAll(text, `\N`, "\n")
		text = strings.ReplaceAll(text, `\n`, "\n")
		text = strings.ReplaceAll(text, `\h`, " ")

		cues = append(cues, Cue{StartMS: start, EndMS: end, Text: strings.TrimSpace(text)})
	}

	if err := scanner.Err(); err != nil {
		return cues, fmt.Errorf("failed to read subtitle stream: %w", err)
	}
	return cues, nil
}

// assTimeMS parses "H:MM:SS.cc" (centiseconds) into milliseconds.
func assTimeMS(ts string) (int64, error) {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("bad timestamp %q", ts)
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad timestamp %q", ts)
	}
	mins, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad timestamp %q", ts)
	}
	secPart, centiPart, found := strings.Cut(parts[2], ".")
	if !found {
		centiPart = "0"
	}
	secs, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad timestamp %q", ts)
	}
	for len(centiPart) < 2 {
		centiPart += "0"
	}
	centis, err := strconv.ParseInt(centiPart[:2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad timestamp %q", ts)
	}
	return ((hours*60+mins)*60+secs)*1000 + centis*10, nil
}

// cutPrefixFold is strings.CutPrefix with an ASCII case-insensitive match.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
