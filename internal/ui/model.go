// Package ui provides the Bubbletea terminal user interface for kanarate
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kanarate/internal/report"
)

// ShowStatus represents the scanning state of a single show
type ShowStatus int

const (
	StatusQueued ShowStatus = iota
	StatusScanning
	StatusComplete
	StatusSkipped
	StatusError
)

// ShowProgress tracks progress for a single show directory
type ShowProgress struct {
	Name   string
	Status ShowStatus

	// Episode tracking
	EpisodesDone   int
	EpisodesFailed int
	CurrentFile    string

	// Timing
	StartTime   time.Time
	ElapsedTime time.Duration

	// Completion results
	Row report.ShowRow
}

// Model is the Bubbletea model for the scanning UI
type Model struct {
	// Show queue
	Shows          []ShowProgress
	CurrentIndex   int
	TotalShows     int
	CompletedShows int
	SkippedShows   int

	// Global state
	StartTime time.Time
	Done      bool

	// Channel for receiving progress updates from the scanner
	ProgressChan chan tea.Msg

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model with the given show names
func NewModel(showNames []string) Model {
	shows := make([]ShowProgress, len(showNames))
	for i, name := range showNames {
		shows[i] = ShowProgress{
			Name:   name,
			Status: StatusQueued,
		}
	}

	return Model{
		Shows:        shows,
		CurrentIndex: -1, // No show scanning yet
		TotalShows:   len(showNames),
		StartTime:    time.Now(),
		ProgressChan: make(chan tea.Msg, 100), // Buffered channel
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return waitForProgress(m.ProgressChan)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ShowStartMsg:
		m.CurrentIndex = msg.ShowIndex
		m.Shows[m.CurrentIndex].Status = StatusScanning
		m.Shows[m.CurrentIndex].StartTime = time.Now()
		return m, waitForProgress(m.ProgressChan)

	case EpisodeDoneMsg:
		if msg.ShowIndex >= 0 && msg.ShowIndex < len(m.Shows) {
			show := &m.Shows[msg.ShowIndex]
			show.EpisodesDone++
			if msg.Failed {
				show.EpisodesFailed++
			}
			show.CurrentFile = msg.File
			show.ElapsedTime = time.Since(show.StartTime)
		}
		return m, waitForProgress(m.ProgressChan)

	case ShowDoneMsg:
		if msg.ShowIndex >= 0 && msg.ShowIndex < len(m.Shows) {
			show := &m.Shows[msg.ShowIndex]
			show.Row = msg.Row
			show.EpisodesDone = msg.Episodes
			show.EpisodesFailed = msg.Failed
			show.ElapsedTime = time.Since(show.StartTime)

			if msg.Skipped {
				// A show with parse failures and no data is an error,
				// not merely empty.
				if msg.Failed > 0 {
					show.Status = StatusError
				} else {
					show.Status = StatusSkipped
				}
				m.SkippedShows++
			} else {
				show.Status = StatusComplete
				m.CompletedShows++
			}
		}
		return m, waitForProgress(m.ProgressChan)

	case AllDoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Done {
		return renderCompletionSummary(m)
	}
	return renderScanView(m)
}

// Rows returns the completed rows in queue order, for rendering after the
// program exits
func (m Model) Rows() []report.ShowRow {
	rows := make([]report.ShowRow, 0, m.CompletedShows)
	for _, show := range m.Shows {
		if show.Status == StatusComplete {
			rows = append(rows, show.Row)
		}
	}
	return rows
}

// waitForProgress creates a command that waits for progress messages
func waitForProgress(progressChan chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-progressChan
	}
}
