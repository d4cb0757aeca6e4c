// Package flash detects script files dropped into the flash update
// directory and announces them to the shell. Files are named, never
// executed or parsed; trusting their contents is out of scope here.
package flash

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"haloboard.dev/internal/config"
)

// Watcher is the event-driven detection strategy. Each create event for a
// qualifying file yields exactly one UpdateMsg.
type Watcher struct {
	dir    string
	log    *logrus.Logger
	sender Sender
	fs     *fsnotify.Watcher
	done   chan struct{}
}

// NewWatcher creates a watcher for the given flash directory.
func NewWatcher(dir string, log *logrus.Logger) *Watcher {
	return &Watcher{
		dir:  dir,
		log:  log,
		done: make(chan struct{}),
	}
}

// Start begins watching in a goroutine. Detections are sent as tea messages
// via sender.Send().
func (w *Watcher) Start(sender Sender) error {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fs.Add(w.dir); err != nil {
		fs.Close()
		return err
	}

	w.sender = sender
	w.fs = fs

	go func() {
		for {
			select {
			case <-w.done:
				return
			case ev, ok := <-fs.Events:
				if !ok {
					return
				}
				if !ev.Op.Has(fsnotify.Create) {
					continue
				}
				name := filepath.Base(ev.Name)
				if !Qualifies(name) {
					continue
				}
				w.log.WithField("file", name).Info("flash update detected")
				if w.sender != nil {
					w.sender.Send(UpdateMsg{FileName: name, DetectedAt: time.Now()})
				}
			case err, ok := <-fs.Errors:
				if !ok {
					return
				}
				w.log.WithError(err).Warn("flash watch error")
				if w.sender != nil {
					w.sender.Send(ErrorMsg{Err: err})
				}
			}
		}
	}()

	return nil
}

// Stop halts the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	if w.fs != nil {
		_ = w.fs.Close()
	}
}

// Qualifies reports whether a file name is a flash update candidate:
// correct extension, not hidden.
func Qualifies(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), config.FlashExtension)
}
