package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// srtTimeline matches "HH:MM:SS,mmm --> HH:MM:SS,mmm". Some files use a
// dot before the milliseconds, so both separators are accepted.
var srtTimeline = regexp.MustCompile(
	`(\d+):(\d{1,2}):(\d{1,2})[,.](\d{1,3})\s*-->\s*(\d+):(\d{1,2}):(\d{1,2})[,.](\d{1,3})`)

// ParseSRT reads SubRip cues from r. Blocks without a valid timing line
// are skipped rather than failing the whole file.
func ParseSRT(r io.Reader) ([]Cue, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var cues []Cue
	var block []string
	first := true

	flush := func() {
		if len(block) > 0 {
			if cue, ok := cueFromBlock(block); ok {
				cues = append(cues, cue)
			}
			block = block[:0]
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return cues, fmt.Errorf("failed to read subtitle stream: %w", err)
	}
	return cues, nil
}

// cueFromBlock converts one SRT block (index line, timing line, text
// lines) into a cue. The index line is optional; the timing line is not.
func cueFromBlock(block []string) (Cue, bool) {
	for i, line := range block {
		m := srtTimeline.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		start := srtTimeMS(m[1], m[2], m[3], m[4])
		end := srtTimeMS(m[5], m[6], m[7], m[8])
		text := strings.TrimSpace(strings.Join(block[i+1:], "\n"))
		return Cue{StartMS: start, EndMS: end, Text: text}, true
	}
	return Cue{}, false
}

func srtTimeMS(h, m, s, ms string) int64 {
	hours, _ := strconv.ParseInt(h, 10, 64)
	mins, _ := strconv.ParseInt(m, 10, 64)
	secs, _ := strconv.ParseInt(s, 10, 64)
	// Pad so "5" reads as 500ms, not 5ms.
	for len(ms) < 3 {
		ms += "0"
	}
	millis, _ := strconv.ParseInt(ms, 10, 64)
	return ((hours*60+mins)*60+secs)*1000 + millis
}
