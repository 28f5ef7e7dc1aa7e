// Package scheduler drives the tracking machine from timers and user actions
// on a single goroutine.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/watsonbar/watsonbar/internal/projector"
	"github.com/watsonbar/watsonbar/internal/tracking"
	"github.com/watsonbar/watsonbar/internal/watson"
)

// DefaultReminderTitle is the notification title used when none is configured.
const DefaultReminderTitle = "Watson Time Tracker"

// Renderer displays frames. Render is called from the loop goroutine.
type Renderer interface {
	Render(projector.Frame)
}

// Notifier delivers a one-shot user notification.
type Notifier interface {
	Notify(title, message string) error
}

// Intervals are the three tick cadences.
type Intervals struct {
	Title     time.Duration
	Reconcile time.Duration
	Reminder  time.Duration
}

// DefaultIntervals returns the 1s / 60s / 30m cadences.
func DefaultIntervals() Intervals {
	return Intervals{
		Title:     time.Second,
		Reconcile: time.Minute,
		Reminder:  30 * time.Minute,
	}
}

// Options configures a Loop.
type Options struct {
	Intervals     Intervals
	Appearance    projector.Appearance
	Notify        bool
	ReminderTitle string
}

// Loop serialises every machine operation. Ticks and submitted actions run
// one at a time on the goroutine executing Run, and each is followed by a
// render.
type Loop struct {
	machine  *tracking.Machine
	renderer Renderer
	notifier Notifier
	now      func() time.Time

	actions chan func(context.Context)
	done    chan struct{}

	mu   sync.Mutex
	opts Options

	lastErr error
	tickers struct {
		title, reconcile, reminder *time.Ticker
	}
}

// New creates a loop. Zero intervals fall back to DefaultIntervals.
func New(machine *tracking.Machine, renderer Renderer, notifier Notifier, opts Options) *Loop {
	return &Loop{
		machine:  machine,
		renderer: renderer,
		notifier: notifier,
		now:      time.Now,
		actions:  make(chan func(context.Context), 16),
		done:     make(chan struct{}),
		opts:     normalize(opts),
	}
}

func normalize(opts Options) Options {
	def := DefaultIntervals()
	if opts.Intervals.Title <= 0 {
		opts.Intervals.Title = def.Title
	}
	if opts.Intervals.Reconcile <= 0 {
		opts.Intervals.Reconcile = def.Reconcile
	}
	if opts.Intervals.Reminder <= 0 {
		opts.Intervals.Reminder = def.Reminder
	}
	if opts.ReminderTitle == "" {
		opts.ReminderTitle = DefaultReminderTitle
	}
	return opts
}

func (l *Loop) options() Options {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opts
}

// Run processes ticks and actions until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	iv := l.options().Intervals
	l.tickers.title = time.NewTicker(iv.Title)
	l.tickers.reconcile = time.NewTicker(iv.Reconcile)
	l.tickers.reminder = time.NewTicker(iv.Reminder)
	defer l.tickers.title.Stop()
	defer l.tickers.reconcile.Stop()
	defer l.tickers.reminder.Stop()

	l.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.actions:
			fn(ctx)
			l.render()
		case <-l.tickers.title.C:
			l.titleTick(ctx)
		case <-l.tickers.reconcile.C:
			l.reconcileTick(ctx)
		case <-l.tickers.reminder.C:
			l.reminderTick()
		}
	}
}

// submit queues fn for the loop goroutine. It returns false once the loop
// has stopped.
func (l *Loop) submit(fn func(context.Context)) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.actions <- fn:
		return true
	case <-l.done:
		return false
	}
}

// StartProject queues a start of project.
func (l *Loop) StartProject(project string) bool {
	return l.submit(func(ctx context.Context) {
		l.startProject(ctx, project)
	})
}

// StopTracking queues a stop of the running task.
func (l *Loop) StopTracking() bool {
	return l.submit(l.stopTracking)
}

// CreateProject queues registration and start of a new project.
func (l *Loop) CreateProject(name string) bool {
	return l.submit(func(ctx context.Context) {
		l.createProject(ctx, name)
	})
}

// RefreshNow queues an unconditional status refresh.
func (l *Loop) RefreshNow() bool {
	return l.submit(func(ctx context.Context) {
		l.track(l.machine.Refresh(ctx), "refresh")
	})
}

// ApplySettings queues new options. Tick cadences take effect on the next
// period.
func (l *Loop) ApplySettings(opts Options) bool {
	return l.submit(func(context.Context) {
		l.applySettings(opts)
	})
}

func (l *Loop) startProject(ctx context.Context, project string) {
	err := l.machine.Start(ctx, project)
	if errors.Is(err, watson.ErrCommandFailed) {
		log.Printf("[scheduler] Start %q failed: %v", project, err)
		l.report(fmt.Sprintf("Could not start %s", project))
		return
	}
	l.track(err, "start")
}

func (l *Loop) stopTracking(ctx context.Context) {
	err := l.machine.Stop(ctx)
	if errors.Is(err, watson.ErrCommandFailed) {
		log.Printf("[scheduler] Stop failed: %v", err)
		l.report("Could not stop the running task")
		return
	}
	l.track(err, "stop")
}

func (l *Loop) createProject(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	l.startProject(ctx, name)
	if l.machine.Registry().Add(name) {
		log.Printf("[scheduler] Added project %q", name)
	}
}

func (l *Loop) applySettings(opts Options) {
	opts = normalize(opts)
	l.mu.Lock()
	old := l.opts
	l.opts = opts
	l.mu.Unlock()

	if l.tickers.title == nil {
		return
	}
	if opts.Intervals.Title != old.Intervals.Title {
		l.tickers.title.Reset(opts.Intervals.Title)
	}
	if opts.Intervals.Reconcile != old.Intervals.Reconcile {
		l.tickers.reconcile.Reset(opts.Intervals.Reconcile)
	}
	if opts.Intervals.Reminder != old.Intervals.Reminder {
		l.tickers.reminder.Reset(opts.Intervals.Reminder)
	}
	log.Printf("[scheduler] Settings applied (title=%s reconcile=%s reminder=%s)",
		opts.Intervals.Title, opts.Intervals.Reconcile, opts.Intervals.Reminder)
}

// titleTick fills in a just-started task if needed and redraws. A read made
// here counts toward the error indicator like any other.
func (l *Loop) titleTick(ctx context.Context) {
	refreshed, err := l.machine.EnsureKnown(ctx)
	if refreshed {
		l.track(err, "title refresh")
	}
	l.render()
}

// reconcileTick picks up tasks started or stopped outside the menu. After a
// failed read it refreshes even while idle so the error indicator clears
// once watson answers again.
func (l *Loop) reconcileTick(ctx context.Context) {
	var err error
	if l.lastErr != nil {
		err = l.machine.Refresh(ctx)
	} else {
		err = l.machine.Reconcile(ctx)
	}
	l.track(err, "reconcile")
	l.render()
}

// reminderTick asks whether the running task is still being worked on. It
// waits until the task name is known.
func (l *Loop) reminderTick() {
	s := l.machine.State()
	if !s.Running() {
		return
	}
	opts := l.options()
	msg := projector.ReminderMessage(s.TaskName)
	if !opts.Notify || l.notifier == nil {
		log.Printf("[scheduler] Reminder: %s", msg)
		return
	}
	if err := l.notifier.Notify(opts.ReminderTitle, msg); err != nil {
		log.Printf("[scheduler] Failed to send reminder: %v", err)
	}
}

// report tells the user about a command watson refused.
func (l *Loop) report(msg string) {
	opts := l.options()
	if !opts.Notify || l.notifier == nil {
		return
	}
	if err := l.notifier.Notify(opts.ReminderTitle, msg); err != nil {
		log.Printf("[scheduler] Failed to send notification: %v", err)
	}
}

// track records the outcome of a status read. A failure is kept as the error
// indicator until a later read succeeds.
func (l *Loop) track(err error, what string) {
	if err != nil {
		if l.lastErr == nil || l.lastErr.Error() != err.Error() {
			log.Printf("[scheduler] %s failed: %v", what, err)
		}
		l.lastErr = err
		return
	}
	l.lastErr = nil
}

func (l *Loop) frame() projector.Frame {
	return projector.Project(projector.Input{
		State:      l.machine.State(),
		Projects:   l.machine.Registry().Names(),
		Now:        l.now(),
		Err:        l.lastErr,
		Appearance: l.options().Appearance,
	})
}

func (l *Loop) render() {
	if l.renderer != nil {
		l.renderer.Render(l.frame())
	}
}
