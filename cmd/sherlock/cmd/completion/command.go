// Package completion provides shell completion management commands.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/cmd/completion"
	"github.com/agentstation/sherlock/internal/cmd/constants"
)

// NewCommand creates the completion command. It replaces cobra's generated
// command to add install and uninstall.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Manage shell completions",
		Long: `Manage shell completions for sherlock.

Generate a completion script to stdout, or install it where your shell
picks it up.`,
		Example: `  source <(sherlock completion bash)             # Load for the current session
  sherlock completion install zsh                # Install for zsh
  sherlock completion uninstall zsh`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	for _, shell := range constants.Shells {
		cmd.AddCommand(&cobra.Command{
			Use:                   shell,
			Short:                 "Generate " + shell + " completion script",
			DisableFlagsInUseLine: true,
			Args:                  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return completion.Generate(cmd.Root(), shell, cmd.OutOrStdout())
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "install <shell>",
		Short:     "Install the completion script for a shell",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{constants.ShellBash, constants.ShellZsh, constants.ShellFish},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := completion.Install(cmd.Root(), args[0], cmd.OutOrStdout())
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "uninstall <shell>",
		Short:     "Remove an installed completion script",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{constants.ShellBash, constants.ShellZsh, constants.ShellFish},
		RunE: func(cmd *cobra.Command, args []string) error {
			return completion.Uninstall(cmd.Root().Name(), args[0], cmd.OutOrStdout())
		},
	})
	return cmd
}
