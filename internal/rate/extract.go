package rate

import (
	"strings"

	"kanarate/internal/subtitle"
)

// Line is one subtitle cue that survived filtering: its timing span, unit
// count, articulation rate in units per minute, and duration weight in
// seconds.
type Line struct {
	Interval
	Count  int
	Rate   float64
	Weight float64
}

// ExtractLines converts cues into per-line observations. A cue is dropped
// when its text is empty, empty after annotation stripping, its duration
// is not positive, or its unit count is not positive, so downstream math
// never sees a zero or infinite rate.
func ExtractLines(cues []subtitle.Cue, unit Unit, r Reader) []Line {
	lines := make([]Line, 0, len(cues))
	for _, cue := range cues {
		if strings.TrimSpace(cue.Text) == "" {
			continue
		}
		text := subtitle.StripNonspoken(cue.Text)
		if text == "" {
			continue
		}
		durationMS := cue.EndMS - cue.StartMS
		if durationMS <= 0 {
			continue
		}

		reading := r.ToKana(text, unit.StripSokuon())
		count := unit.Count(r, reading)
		if count <= 0 {
			continue
		}

		seconds := float64(durationMS) / 1000.0
		lines = append(lines, Line{
			Interval: Interval{StartMS: cue.StartMS, EndMS: cue.EndMS},
			Count:    count,
			Rate:     float64(count) / (seconds / 60.0),
			Weight:   seconds,
		})
	}
	return lines
}
