// Package cli implements the watsonbar commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/watsonbar/watsonbar/internal/config"
	"github.com/watsonbar/watsonbar/internal/menu"
	"github.com/watsonbar/watsonbar/internal/models"
	"github.com/watsonbar/watsonbar/internal/notify"
	"github.com/watsonbar/watsonbar/internal/projector"
	"github.com/watsonbar/watsonbar/internal/scheduler"
	"github.com/watsonbar/watsonbar/internal/tray"
)

var foreground bool

var rootCmd = &cobra.Command{
	Use:   "watsonbar",
	Short: "Menu-bar front end for the watson time tracker",
	Long: `Watsonbar shows the task watson is tracking and how long it has run,
lets you start, stop, and create projects from the menu, and reminds you
periodically while a task keeps running.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if foreground {
			return runForeground()
		}
		return runWithTray()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&foreground, "foreground", false, "Run without the menu bar, logging frames to stderr")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

// runWithTray runs the menu bar on the main goroutine. systray.Run must
// occupy the main goroutine on macOS.
func runWithTray() error {
	logs, err := config.SetupLogging("[watsonbar] ", true)
	if err != nil {
		return err
	}
	defer logs.Close()

	a, err := newApp()
	if err != nil {
		return err
	}
	if err := claimInstance(models.ModeTray); err != nil {
		return err
	}
	defer releaseInstance()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := a.boot(ctx); err != nil {
		return err
	}

	ctrl := menu.NewController(nil, tray.Dialog{})
	t := tray.New(ctrl)
	notifier := notify.Fallback{Primary: notify.NewDesktop("Watsonbar"), Secondary: notify.Log{}}
	loop := scheduler.New(a.machine, t, notifier, loopOptions(a.settings))
	ctrl.SetActions(loop)

	// onStart and onExit run on systray's goroutines.
	var (
		mu        sync.Mutex
		stopWatch func()
		started   bool
	)
	loopDone := make(chan struct{})

	onStart := func() {
		mu.Lock()
		defer mu.Unlock()
		started = true
		go func() {
			defer close(loopDone)
			if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Loop stopped: %v", err)
			}
		}()

		if stop, err := a.watchSettings(loop); err != nil {
			log.Printf("Settings watcher disabled: %v", err)
		} else {
			stopWatch = stop
		}

		// Handle OS signals: quit tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("Received signal %v, shutting down...", sig)
			tray.Quit()
		}()
	}

	onExit := func() {
		mu.Lock()
		stop, wait := stopWatch, started
		mu.Unlock()

		if stop != nil {
			stop()
		}
		cancel()
		if wait {
			<-loopDone
		}
	}

	log.Println("Running in menu bar mode")
	t.Run(onStart, onExit)
	return nil
}

// logRenderer writes each title change to the log.
type logRenderer struct {
	last string
}

func (r *logRenderer) Render(frame projector.Frame) {
	if frame.Title == r.last {
		return
	}
	r.last = frame.Title
	log.Printf("[frame] %s", frame.Title)
}

// runForeground runs the loop without any menu, blocking on signals.
func runForeground() error {
	logs, err := config.SetupLogging("[watsonbar] ", true)
	if err != nil {
		return err
	}
	defer logs.Close()

	a, err := newApp()
	if err != nil {
		return err
	}
	if err := claimInstance(models.ModeForeground); err != nil {
		return err
	}
	defer releaseInstance()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := a.boot(ctx); err != nil {
		return err
	}

	loop := scheduler.New(a.machine, &logRenderer{}, notify.Log{}, loopOptions(a.settings))
	if stopWatch, err := a.watchSettings(loop); err != nil {
		log.Printf("Settings watcher disabled: %v", err)
	} else {
		defer stopWatch()
	}

	log.Println("Running in foreground mode (no menu bar)")
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Println("watsonbar stopped")
	return nil
}
