package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/watsonbar/watsonbar/internal/config"
	"github.com/watsonbar/watsonbar/internal/models"
)

var settingsInit bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings",
	Long: `Shows the settings in effect, with defaults filled in.

Settings live in ~/.watsonbar/settings.yaml. A running watsonbar picks up
changes to intervals, notifications, and appearance without a restart.
Use --init to write the defaults when the file does not exist yet.`,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&settingsInit, "init", false, "Write default settings if none exist")
}

func runSettings(cmd *cobra.Command, args []string) error {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	if settingsInit {
		if config.FileExists(path) {
			fmt.Printf("%s %s already exists\n", styleWarning.Render("Skipped:"), path)
		} else {
			if err := config.SaveSettings(models.NewSettings()); err != nil {
				return fmt.Errorf("failed to write settings: %w", err)
			}
			fmt.Printf("%s %s\n", styleRunning.Render("Wrote"), path)
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	source := path
	if !config.FileExists(path) {
		source = "defaults (" + path + " not found)"
	}
	fmt.Printf("%s %s\n\n", styleLabel.Render("Source:"), styleValue.Render(source))
	fmt.Print(string(out))
	return nil
}
