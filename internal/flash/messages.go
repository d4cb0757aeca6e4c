package flash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender receives detection messages. *tea.Program satisfies it; tests use
// a channel-backed stand-in.
type Sender interface {
	Send(tea.Msg)
}

// UpdateMsg is sent via tea.Program.Send when a flash update file appears.
type UpdateMsg struct {
	FileName   string
	DetectedAt time.Time
}

// ErrorMsg reports a detection failure. Never fatal; the source retries on
// its next cycle.
type ErrorMsg struct {
	Err error
}
