package shell

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"haloboard.dev/internal/config"
	"haloboard.dev/internal/flash"
	"haloboard.dev/internal/idle"
	"haloboard.dev/internal/nightshift"
	"haloboard.dev/internal/timer"
	"haloboard.dev/internal/ui"
)

const (
	dimmedLevel    = 0.35
	bannerLifetime = 8 * time.Second
	bootSeconds    = 2.0
	tickerText     = "haloboard • press any key to wake"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data. The working configuration lives here so the
// idle tracker's timeout lookup always sees the latest settings.
type shared struct {
	store     *config.Store
	log       *logrus.Logger
	cfg       config.Config
	tint      nightshift.Result
	idle      *idle.Tracker
	countdown *timer.Countdown
	registry  *flash.Registry
	watcher   *flash.Watcher
	poller    *flash.Poller
	frames    *FrameRing

	persistFailed bool

	locName string
	loc     *time.Location
}

// AppModel is the root Bubble Tea model for the kiosk shell. It is the
// orchestrator: it wires the idle tracker, night shift scheduler, countdown
// and flash sources together and applies settings to presentation state.
type AppModel struct {
	width  int
	height int

	dev bool

	booting    bool
	bootFrames int
	frame      int
	lastFrame  time.Time
	heartbeats int

	settingsOpen   bool
	settingsCursor int
	editing        bool
	editBuffer     string
	settingsErr    string

	banner      string
	bannerUntil time.Time

	shared *shared
}

// New loads the settings document and creates the shell model.
func New(store *config.Store, log *logrus.Logger, dev bool) AppModel {
	sh := &shared{
		store:     store,
		log:       log,
		cfg:       store.Load(),
		countdown: timer.New(),
		registry:  flash.NewRegistry(),
		frames:    NewFrameRing(config.TargetFPS * 4),
	}
	sh.idle = idle.NewTracker(time.Now(), func() time.Duration {
		return time.Duration(sh.cfg.Display.DimAfter) * time.Second
	})

	m := AppModel{
		dev:     dev,
		booting: true,
		shared:  sh,
	}
	m.shared.tint = nightshift.Evaluate(sh.cfg.Display.NightShift, m.now())
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		heartbeatCmd(),
		frameCmd(),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleInteraction(msg)

	case tea.MouseMsg:
		m.touch()
		return m, nil

	case HeartbeatMsg:
		return m.heartbeat(time.Time(msg))

	case FrameMsg:
		return m.frameTick(time.Time(msg))

	case flash.UpdateMsg:
		m.shared.registry.Record(msg.FileName, msg.DetectedAt)
		m.banner = msg.FileName
		m.bannerUntil = time.Now().Add(bannerLifetime)
		m.shared.log.WithField("file", msg.FileName).Info("flash update announced")
		return m, nil

	case flash.ErrorMsg:
		// Already logged at the source; next cycle retries.
		return m, nil
	}

	return m, nil
}

// heartbeat runs the consolidated once-per-second pass: idle countdown,
// night shift re-check, countdown tick. Ordering is fixed so behavior is
// deterministic under test.
func (m AppModel) heartbeat(now time.Time) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.shared.idle.Tick(now) {
		m.shared.log.Info("display dimmed")
	}

	if m.heartbeats%config.NightShiftEvery == 0 {
		m.shared.tint = nightshift.Evaluate(m.shared.cfg.Display.NightShift, m.now())
	}
	m.heartbeats++

	if m.shared.countdown.Tick() {
		m.shared.log.Info("countdown complete")
		cmds = append(cmds, bellCmd())
	}

	if m.banner != "" && now.After(m.bannerUntil) {
		m.banner = ""
	}

	cmds = append(cmds, heartbeatCmd())
	return m, tea.Batch(cmds...)
}

func (m AppModel) frameTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		m.shared.frames.Push(now.Sub(m.lastFrame))
	}
	m.lastFrame = now
	m.frame++

	if m.booting {
		m.bootFrames++
		if m.bootFrames >= m.bootTotalFrames() {
			m.booting = false
		}
	}

	return m, frameCmd()
}

func (m AppModel) handleInteraction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	woke := m.touch()

	var cmds []tea.Cmd
	if m.shared.cfg.Features.HapticFeedback {
		cmds = append(cmds, bellCmd())
	}

	if m.booting {
		m.booting = false
		return m, tea.Batch(cmds...)
	}
	if woke {
		// The waking keypress only wakes; it is not a command.
		return m, tea.Batch(cmds...)
	}

	if m.settingsOpen {
		next, cmd := m.handleSettingsKey(msg)
		cmds = append(cmds, cmd)
		return next, tea.Batch(cmds...)
	}

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.stopSources()
		return m, tea.Quit

	case "+", "t", "T":
		m.shared.countdown.AddTime(60)

	case " ":
		if m.shared.countdown.Running() {
			m.shared.countdown.Pause()
		} else {
			m.shared.countdown.Start()
		}

	case "c", "C":
		m.shared.countdown.Clear()

	case "s", "S":
		m.settingsOpen = true
		m.settingsCursor = 0
		m.editing = false
		m.editBuffer = ""
		m.settingsErr = ""
	}

	return m, tea.Batch(cmds...)
}

// touch records an interaction. Returns true when this wakes the display.
func (m AppModel) touch() bool {
	if m.shared.idle.Touch(time.Now()) {
		m.shared.log.Info("display woke")
		return true
	}
	return false
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting haloboard..."
	}

	level := float64(m.shared.cfg.Display.Brightness) / 100
	if m.shared.idle.State() == idle.Dimmed {
		level *= dimmedLevel
	}
	p := ui.NewPalette(m.shared.tint.Warmth, level)

	if m.booting {
		progress := float64(m.bootFrames) / float64(m.bootTotalFrames())
		return ui.RenderBoot(progress, m.width, m.height, p)
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	menuBar := ui.RenderMenuBar(m.width, m.shared.tint.Active, p)

	perf := ""
	if m.shared.cfg.Features.PerformanceMonitor || m.dev {
		perf = fmt.Sprintf("frame %v  beats %d", m.shared.frames.Avg().Round(time.Millisecond), m.heartbeats)
	}
	statusBar := ui.RenderStatusBar(m.width, m.shared.idle.State(),
		m.shared.cfg.Time.Timezone, m.shared.registry.Count(), perf, p)

	var body string
	if m.settingsOpen {
		body = ui.RenderSettings(m.shared.cfg, m.settingsCursor, m.editIndicator(), m.settingsErr,
			m.width*2/3, bodyH, p)
	} else {
		body = m.renderFace(p)
	}

	return ui.ComposeLayout(menuBar, body, statusBar, m.width, bodyH)
}

func (m AppModel) renderFace(p ui.Palette) string {
	now := m.now()

	sections := []string{
		ui.RenderClock(now, m.shared.cfg.Time.Format, m.width, p),
		ui.RenderDate(now, m.width, p),
		"",
		ui.RenderCountdown(m.shared.countdown, m.width, m.pulseOn(), p),
	}

	if m.shared.idle.State() == idle.Dimmed {
		sections = append(sections, "", ui.RenderTicker(tickerText, m.width/2, m.frame, p))
	}
	if m.banner != "" {
		sections = append(sections, "", ui.RenderBanner(m.banner, m.width, p))
	}
	if m.shared.persistFailed {
		sections = append(sections, "", ui.RenderBanner("settings not persisted this session", m.width, p))
	}

	body := sections[0]
	for _, s := range sections[1:] {
		body += "\n" + s
	}
	return body
}

// pulseOn alternates at roughly 2 Hz for the critical-phase blink. Low
// animation intensity keeps the marker steady instead.
func (m AppModel) pulseOn() bool {
	if m.shared.cfg.Animations.Intensity == "low" {
		return true
	}
	return (m.frame/(config.TargetFPS/2))%2 == 0
}

func (m AppModel) bootTotalFrames() int {
	frames := int(bootSeconds * float64(config.TargetFPS) * m.shared.cfg.Animations.DurationMultiplier)
	if frames < 1 {
		frames = 1
	}
	return frames
}

// now returns the wall clock in the configured timezone, cached per zone
// name. "Local" and unknown zones fall back to the system zone.
func (m AppModel) now() time.Time {
	name := m.shared.cfg.Time.Timezone
	if m.shared.loc == nil || m.shared.locName != name {
		loc := time.Local
		if name != "" && name != "Local" {
			if l, err := time.LoadLocation(name); err == nil {
				loc = l
			} else {
				m.shared.log.WithError(err).Warn("bad timezone, using system zone")
			}
		}
		m.shared.loc = loc
		m.shared.locName = name
	}
	return time.Now().In(m.shared.loc)
}

// Snapshot returns a read-only copy of the working configuration.
func (m AppModel) Snapshot() config.Config {
	return m.shared.cfg
}

// UpdateSetting validates and applies a settings change, persists it, and
// re-applies derived presentation state. On a write failure the in-memory
// document stays authoritative and the session continues non-persistent.
func (m AppModel) UpdateSetting(s config.Setting, value any) error {
	if err := s.Apply(&m.shared.cfg, value); err != nil {
		return err
	}

	if err := m.shared.store.Save(m.shared.cfg); err != nil {
		m.shared.log.WithError(err).Error("settings write failed, continuing in memory")
		m.shared.persistFailed = true
	} else {
		m.shared.persistFailed = false
	}

	m.shared.tint = nightshift.Evaluate(m.shared.cfg.Display.NightShift, m.now())
	return nil
}

// Countdown pass-throughs for the host surface.

func (m AppModel) AddTime(seconds int) bool { return m.shared.countdown.AddTime(seconds) }
func (m AppModel) StartTimer()              { m.shared.countdown.Start() }
func (m AppModel) PauseTimer()              { m.shared.countdown.Pause() }
func (m AppModel) ClearTimer()              { m.shared.countdown.Clear() }

// StartSources starts the flash update source. Must be called before
// p.Run(). With poll set the relocating poller is used instead of the
// filesystem-event watcher.
func (m *AppModel) StartSources(p *tea.Program, poll bool) error {
	if poll {
		m.shared.poller = flash.NewPoller(m.shared.store.FlashDir(), m.shared.store.ModulesDir(),
			config.FlashPollInterval, m.shared.log)
		return m.shared.poller.Start(p)
	}
	m.shared.watcher = flash.NewWatcher(m.shared.store.FlashDir(), m.shared.log)
	return m.shared.watcher.Start(p)
}

func (m AppModel) stopSources() {
	if m.shared.watcher != nil {
		m.shared.watcher.Stop()
	}
	if m.shared.poller != nil {
		m.shared.poller.Stop()
	}
}

func heartbeatCmd() tea.Cmd {
	return tea.Tick(config.HeartbeatInterval, func(t time.Time) tea.Msg {
		return HeartbeatMsg(t)
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func bellCmd() tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(os.Stderr, "\a")
		return nil
	}
}
