// Package sync provides the sync command.
package sync

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/cmdutil"
	"github.com/agentstation/sherlock/internal/cmd/globals"
	"github.com/agentstation/sherlock/internal/cmd/hints"
)

// NewCommand creates the sync command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var run *globals.RunFlags

	cmd := &cobra.Command{
		Use:     "sync <locale...|all>",
		GroupID: "core",
		Short:   "Copy missing keys from the base locale",
		Long: `Sync adds every key the base locale has and a target locale lacks, using the
base value as a placeholder. Values the target already holds are never
changed. A value standing where the base has a nested object is kept and
reported as a collision.

The changes of each locale are shown and confirmed before its files are
written.`,
		Example: `  sherlock sync fr                               # Sync fr after confirmation
  sherlock sync all -y                           # Sync every locale without asking
  sherlock sync es fr --dry-run                  # Preview only`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.WriterClient(cmd, app, run)
			if err != nil {
				return err
			}
			res, err := client.Sync(cmd.Context(), args, run.Options()...)
			if err != nil {
				return err
			}
			return cmdutil.RenderChanges(cmd, app, res, &res.ChangeResult, hints.Context{
				Command: "sync",
				Args:    args,
			})
		},
	}

	run = globals.AddRunFlags(cmd)
	return cmd
}
