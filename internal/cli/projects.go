package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"ls"},
	Short:   "List watson projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.machine.LoadProjects(context.Background()); err != nil {
			return err
		}

		names := a.machine.Registry().Names()
		if len(names) == 0 {
			fmt.Println(styleHint.Render("No projects yet. Start one from the menu with New Project."))
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}
