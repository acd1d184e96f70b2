package app

import (
	"github.com/spf13/cobra"

	"github.com/plantkeeper/genusbatch/cmd/genusbatch/cmd/check"
	"github.com/plantkeeper/genusbatch/cmd/genusbatch/cmd/run"
	"github.com/plantkeeper/genusbatch/cmd/genusbatch/cmd/validate"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreateRunCommand())
	rootCmd.AddCommand(a.CreateCheckCommand())
	rootCmd.AddCommand(a.CreateValidateCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateRunCommand creates the run command with app dependencies.
func (a *App) CreateRunCommand() *cobra.Command {
	return run.NewCommand(a)
}

// CreateCheckCommand creates the check command with app dependencies.
func (a *App) CreateCheckCommand() *cobra.Command {
	return check.NewCommand(a)
}

// CreateValidateCommand creates the validate command with app dependencies.
func (a *App) CreateValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("genusbatch %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
