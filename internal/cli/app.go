package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/watsonbar/watsonbar/internal/config"
	"github.com/watsonbar/watsonbar/internal/models"
	"github.com/watsonbar/watsonbar/internal/projector"
	"github.com/watsonbar/watsonbar/internal/scheduler"
	"github.com/watsonbar/watsonbar/internal/tracking"
	"github.com/watsonbar/watsonbar/internal/watcher"
	"github.com/watsonbar/watsonbar/internal/watson"
)

// app bundles what every run mode needs.
type app struct {
	settings *models.Settings
	client   *watson.CLI
	machine  *tracking.Machine
}

// newApp loads settings and makes sure watson can be run. Failing to reach
// watson fails startup.
func newApp() (*app, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	client := watson.NewCLI(settings.Watson.Path, settings.Watson.Timeout)
	if err := client.Check(); err != nil {
		return nil, err
	}

	return &app{
		settings: settings,
		client:   client,
		machine:  tracking.NewMachine(client, tracking.NewRegistry(nil)),
	}, nil
}

// boot loads the project list and the current status. Only an unreachable
// watson is fatal; a bad status line is logged and shown as an error
// indicator once the loop starts polling.
func (a *app) boot(ctx context.Context) error {
	log.Println("Retrieving the list of Watson projects...")
	if err := a.machine.LoadProjects(ctx); err != nil {
		return err
	}

	log.Println("Retrieving Watson status...")
	if err := a.machine.Refresh(ctx); err != nil {
		if errors.Is(err, watson.ErrUnavailable) {
			return err
		}
		log.Printf("Warning: %v", err)
	}
	return nil
}

// loopOptions maps settings onto scheduler options.
func loopOptions(s *models.Settings) scheduler.Options {
	return scheduler.Options{
		Intervals: scheduler.Intervals{
			Title:     s.Intervals.Title,
			Reconcile: s.Intervals.Reconcile,
			Reminder:  s.Intervals.Reminder,
		},
		Appearance: projector.Appearance{
			Icon:          s.Appearance.Icon,
			IdleLabel:     s.Appearance.IdleLabel,
			MaxTitleWidth: s.Appearance.MaxTitleWidth,
		},
		Notify:        s.Notifications.Enabled,
		ReminderTitle: s.Notifications.Title,
	}
}

// claimInstance records this process in agent.yaml, refusing to start when
// another instance is alive.
func claimInstance(mode string) error {
	running, info, err := config.IsAgentRunning()
	if err != nil {
		return fmt.Errorf("failed to check for a running instance: %w", err)
	}
	if running {
		return fmt.Errorf("watsonbar already running (PID %d, %s mode)", info.PID, info.Mode)
	}

	info = models.NewAgentInfo(os.Getpid(), mode)
	if err := config.SaveAgentInfo(info); err != nil {
		return fmt.Errorf("failed to write agent info: %w", err)
	}
	log.Printf("Session %s started (PID %d, %s mode)", info.SessionID, info.PID, mode)
	return nil
}

func releaseInstance() {
	if err := config.RemoveAgentInfo(); err != nil {
		log.Printf("Failed to remove agent info: %v", err)
	}
}

// watchSettings reloads settings.yaml on change and hands the result to the
// loop. The returned function stops watching.
func (a *app) watchSettings(loop *scheduler.Loop) (func(), error) {
	if err := config.EnsureGlobalDir(); err != nil {
		return nil, err
	}
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return nil, err
	}

	w, err := watcher.New(path)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return nil, err
	}

	go func() {
		for {
			var ev watcher.Event
			select {
			case <-w.Done():
				return
			case ev = <-w.Events():
			}

			settings := models.NewSettings()
			if ev.Type == watcher.EventSettingsChanged {
				loaded, err := config.LoadSettings()
				if err != nil {
					log.Printf("[settings] Ignoring invalid settings: %v", err)
					continue
				}
				settings = loaded
			}
			if settings.Watson.Path != a.settings.Watson.Path || settings.Watson.Timeout != a.settings.Watson.Timeout {
				log.Printf("[settings] Watson binary settings change on restart")
			}
			loop.ApplySettings(loopOptions(settings))
		}
	}()

	return w.Stop, nil
}
