package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/cmd/sherlock/cmd/add"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/audit"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/clean"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/completion"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/export"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/find"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/importer"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/initialize"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/stats"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/sync"
	"github.com/agentstation/sherlock/cmd/sherlock/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(audit.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(sync.NewCommand(a))
	rootCmd.AddCommand(importer.NewCommand(a))
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(find.NewCommand(a))
	rootCmd.AddCommand(stats.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(clean.NewCommand(a))
	rootCmd.AddCommand(initialize.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())
}
