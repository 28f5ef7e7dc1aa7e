package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/watsonbar/watsonbar/internal/config"
	"github.com/watsonbar/watsonbar/internal/projector"
	"github.com/watsonbar/watsonbar/internal/tracking"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show what watson is tracking",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), a.settings.Watson.Timeout+time.Second)
		defer cancel()
		if err := a.machine.Refresh(ctx); err != nil {
			return err
		}

		printState(a.machine.State(), time.Now())

		if running, info, err := config.IsAgentRunning(); err == nil && running {
			fmt.Printf("  %s PID %d (%s mode)\n", styleLabel.Render("Menu:"), info.PID, info.Mode)
		}
		return nil
	},
}

func printState(s tracking.State, now time.Time) {
	if !s.Started {
		fmt.Println(styleIdle.Render("No project started."))
		return
	}
	if !s.Known() {
		fmt.Println(styleWarning.Render("A project is running but its details are not known yet."))
		return
	}
	fmt.Printf("%s %s\n", styleRunning.Render("Tracking"), styleValue.Render(s.TaskName))
	fmt.Printf("  %s %s\n", styleLabel.Render("Since:"), s.StartTime.Local().Format("15:04:05"))
	fmt.Printf("  %s %s\n", styleLabel.Render("Elapsed:"), projector.FormatElapsed(s.StartTime, now))
}
