package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/cmd/globals"
	"github.com/agentstation/sherlock/internal/cmd/hints"
	"github.com/agentstation/sherlock/internal/cmd/notify"
)

// Execute runs the sherlock CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil && cmd != nil && !a.config.Quiet {
		_ = notify.NewFromCommand(cmd).Hints(hints.Context{
			Command:   cmd.Name(),
			Args:      cmd.Flags().Args(),
			ErrorType: notify.ErrorType(err),
		})
	}
	return err
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sherlock",
		Short:   "Keep locale files in line with the base locale",
		Version: a.version,
		Long: `Sherlock reconciles the JSON locale files of a project against its base
locale. It finds missing and untranslated keys, exports them for
translators, merges missing structure into target locales, imports
translated XLIFF documents and removes orphaned keys.

The project is configured by a .i18n-sherlockrc file (json, yaml or toml)
in the working directory or one of its parents; run "sherlock init" to
create one.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	flags := globals.AddFlags(rootCmd)
	flags.Format = a.config.Format
	rootCmd.PersistentFlags().String("config", "", "project configuration file (default: discovered from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("sherlock {{.Version}}\n")

	a.registerCommands(rootCmd)
	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := globals.Parse(cmd)
	a.config.UpdateFromFlags(
		flags.Verbose,
		flags.Quiet,
		flags.NoColor,
		flags.Format,
		mustGetString(cmd, "log-level"),
		mustGetString(cmd, "config"),
	)

	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
