package flash

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// chanSender collects tea messages on a channel so tests can assert on
// exactly what a source announced.
type chanSender struct {
	msgs chan tea.Msg
}

func newChanSender() *chanSender {
	return &chanSender{msgs: make(chan tea.Msg, 16)}
}

func (s *chanSender) Send(msg tea.Msg) {
	s.msgs <- msg
}

func (s *chanSender) next(t *testing.T) tea.Msg {
	t.Helper()
	select {
	case msg := <-s.msgs:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for detection message")
		return nil
	}
}

func (s *chanSender) expectNone(t *testing.T) {
	t.Helper()
	select {
	case msg := <-s.msgs:
		t.Fatalf("unexpected message: %#v", msg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherAnnouncesCreatedFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(dir, discardLog())
	sender := newChanSender()
	require.NoError(t, w.Start(sender))
	defer w.Stop()

	dropFile(t, dir, "update1.js")

	msg, ok := sender.next(t).(UpdateMsg)
	require.True(t, ok)
	require.Equal(t, "update1.js", msg.FileName)
	require.False(t, msg.DetectedAt.IsZero())

	// One physical file, one message.
	sender.expectNone(t)
}

func TestWatcherIgnoresNonQualifying(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(dir, discardLog())
	sender := newChanSender()
	require.NoError(t, w.Start(sender))
	defer w.Stop()

	dropFile(t, dir, ".hidden.js")
	dropFile(t, dir, "notes.txt")
	sender.expectNone(t)

	// A qualifying file after the rejects still comes through.
	dropFile(t, dir, "update2.js")
	msg, ok := sender.next(t).(UpdateMsg)
	require.True(t, ok)
	require.Equal(t, "update2.js", msg.FileName)
}

func TestWatcherMissingDirFailsStart(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing"), discardLog())
	require.Error(t, w.Start(newChanSender()))
}
