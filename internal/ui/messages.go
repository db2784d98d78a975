package ui

import (
	"kanarate/internal/report"
)

// ShowStartMsg indicates a show directory has started scanning
type ShowStartMsg struct {
	ShowIndex int
	ShowName  string
}

// EpisodeDoneMsg reports one episode file finished within the current show
type EpisodeDoneMsg struct {
	ShowIndex int
	File      string
	Failed    bool
}

// ShowDoneMsg indicates a show has finished scanning
type ShowDoneMsg struct {
	ShowIndex int
	Row       report.ShowRow
	Episodes  int
	Failed    int
	Skipped   bool // no valid speaking time found
}

// AllDoneMsg indicates all shows have been scanned
type AllDoneMsg struct{}
