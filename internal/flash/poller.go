package flash

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"haloboard.dev/internal/config"
)

// Poller is the interval detection strategy: scan the flash directory,
// announce qualifying files, then relocate them into a processed/
// subdirectory so a rescan never rediscovers them. Each relocated file is
// also copied into the modules directory as the installed artifact — a
// name-and-bytes archive only, never executed.
type Poller struct {
	dir        string
	modulesDir string
	interval   time.Duration
	log        *logrus.Logger
	sender     Sender
	done       chan struct{}
}

// NewPoller creates a poller for the given flash directory. Announced
// files are archived into modulesDir.
func NewPoller(dir, modulesDir string, interval time.Duration, log *logrus.Logger) *Poller {
	return &Poller{
		dir:        dir,
		modulesDir: modulesDir,
		interval:   interval,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Start begins polling in a goroutine. Detections are sent as tea messages
// via sender.Send().
func (p *Poller) Start(sender Sender) error {
	if err := os.MkdirAll(p.processedDir(), 0o755); err != nil {
		return err
	}
	p.sender = sender

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.done:
				return
			case <-ticker.C:
				p.scan()
			}
		}
	}()

	return nil
}

// Stop halts the poller.
func (p *Poller) Stop() {
	close(p.done)
}

// Scan runs one detection pass synchronously. A file whose relocation
// fails is not announced; it stays in place and the next cycle retries it,
// so a single physical file still yields at most one notification.
func (p *Poller) Scan() []UpdateMsg {
	return p.scan()
}

func (p *Poller) scan() []UpdateMsg {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		p.log.WithError(err).Warn("flash directory unreadable, retrying next cycle")
		if p.sender != nil {
			p.sender.Send(ErrorMsg{Err: err})
		}
		return nil
	}

	var found []UpdateMsg
	for _, entry := range entries {
		if entry.IsDir() || !Qualifies(entry.Name()) {
			continue
		}
		msg := UpdateMsg{FileName: entry.Name(), DetectedAt: time.Now()}

		src := filepath.Join(p.dir, entry.Name())
		dst := filepath.Join(p.processedDir(), entry.Name())
		if err := os.Rename(src, dst); err != nil {
			// Leave it in place; the next cycle retries the whole file.
			p.log.WithError(err).WithField("file", entry.Name()).Warn("unable to archive flash file")
			continue
		}

		if err := p.install(dst, entry.Name()); err != nil {
			p.log.WithError(err).WithField("file", entry.Name()).Warn("unable to install module copy")
		}

		p.log.WithField("file", msg.FileName).Info("flash update detected")
		found = append(found, msg)
		if p.sender != nil {
			p.sender.Send(msg)
		}
	}
	return found
}

// install copies the archived file into the modules directory. The copy is
// the "installed" artifact by name only; its contents are never read for
// any other purpose.
func (p *Poller) install(src, name string) error {
	if err := os.MkdirAll(p.modulesDir, 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(filepath.Join(p.modulesDir, name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (p *Poller) processedDir() string {
	return filepath.Join(p.dir, config.ProcessedDirName)
}
