package cli

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/watsonbar/watsonbar/internal/config"
	"github.com/watsonbar/watsonbar/internal/models"
	"github.com/watsonbar/watsonbar/internal/scheduler"
	"github.com/watsonbar/watsonbar/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the menu in the terminal",
	Long:  `Runs the same menu as the menu bar inside the terminal. Logs go to the log file only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := config.SetupLogging("[watsonbar] ", false)
		if err != nil {
			return err
		}
		defer logs.Close()

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := claimInstance(models.ModeTUI); err != nil {
			return err
		}
		defer releaseInstance()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := a.boot(ctx); err != nil {
			return err
		}

		host := tui.NewHost()
		loop := scheduler.New(a.machine, host, host, loopOptions(a.settings))

		loopDone := make(chan struct{})
		go func() {
			defer close(loopDone)
			if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Loop stopped: %v", err)
			}
		}()

		if stopWatch, err := a.watchSettings(loop); err != nil {
			log.Printf("Settings watcher disabled: %v", err)
		} else {
			defer stopWatch()
		}

		err = host.Run(loop)
		cancel()
		<-loopDone
		return err
	},
}
