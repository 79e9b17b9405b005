// Package clean provides the clean command.
package clean

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/cmdutil"
	"github.com/agentstation/sherlock/internal/cmd/globals"
	"github.com/agentstation/sherlock/internal/cmd/hints"
)

// NewCommand creates the clean command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var run *globals.RunFlags

	cmd := &cobra.Command{
		Use:     "clean <locale...|all>",
		GroupID: "management",
		Short:   "Remove keys the base locale no longer has",
		Long: `Clean removes from target locale files every value whose key does not exist
in the base locale. Objects left empty by the removal are removed too; files
themselves are never deleted.

The changes of each locale are shown and confirmed before its files are
written.`,
		Example: `  sherlock clean fr                              # Clean fr after confirmation
  sherlock clean all --dry-run                   # Preview only`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.WriterClient(cmd, app, run)
			if err != nil {
				return err
			}
			res, err := client.Clean(cmd.Context(), args, run.Options()...)
			if err != nil {
				return err
			}
			return cmdutil.RenderChanges(cmd, app, res, &res.ChangeResult, hints.Context{
				Command: "clean",
				Args:    args,
				Orphans: len(res.Orphans),
			})
		},
	}

	run = globals.AddRunFlags(cmd)
	return cmd
}
