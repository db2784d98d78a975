package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSRT(t *testing.T) {
	input := "\uFEFF1\n" +
		"00:00:01,500 --> 00:00:03,000\n" +
		"こんにちは\n" +
		"\n" +
		"2\n" +
		"00:00:03.250 --> 00:00:04,000\n" +
		"first line\n" +
		"second line\n" +
		"\n" +
		"garbage block without timing\n" +
		"\n" +
		"3\n" +
		"01:02:03,004 --> 01:02:04,005\n" +
		"last\n"

	cues, err := ParseSRT(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(cues) != 3 {
		t.Fatalf("got %d cues, want 3", len(cues))
	}

	if cues[0].StartMS != 1500 || cues[0].EndMS != 3000 {
		t.Errorf("cue 0 timing = (%d, %d), want (1500, 3000)", cues[0].StartMS, cues[0].EndMS)
	}
	if cues[0].Text != "こんにちは" {
		t.Errorf("cue 0 text = %q", cues[0].Text)
	}

	// Dot millisecond separator and multi-line text.
	if cues[1].StartMS != 3250 {
		t.Errorf("cue 1 start = %d, want 3250", cues[1].StartMS)
	}
	if cues[1].Text != "first line\nsecond line" {
		t.Errorf("cue 1 text = %q", cues[1].Text)
	}

	wantStart := int64((1*3600+2*60+3)*1000 + 4)
	if cues[2].StartMS != wantStart {
		t.Errorf("cue 2 start = %d, want %d", cues[2].StartMS, wantStart)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	cues, err := ParseSRT(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if len(cues) != 0 {
		t.Errorf("got %d cues from empty input", len(cues))
	}
}

func TestParseFileUnknownExtension(t *testing.T) {
	cues, err := ParseFile(filepath.Join(t.TempDir(), "notes.txt"))
	if err != nil {
		t.Fatalf("ParseFile on unknown extension returned error: %v", err)
	}
	if cues != nil {
		t.Errorf("got %d cues, want none", len(cues))
	}
}

func TestParseFileSRT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ep01.srt")
	content := "1\n00:00:00,000 --> 00:00:01,000\nhello\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cues, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(cues) != 1 || cues[0].Text != "hello" {
		t.Errorf("unexpected cues: %+v", cues)
	}
}

func TestRecognized(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"show/ep.srt", true},
		{"show/ep.SRT", true},
		{"show/ep.ass", true},
		{"show/ep.Ass", true},
		{"show/ep.txt", false},
		{"show/ep", false},
	}
	for _, tt := range tests {
		if got := Recognized(tt.path); got != tt.want {
			t.Errorf("Recognized(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
