// Package add provides the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/cmdutil"
	"github.com/agentstation/sherlock/internal/cmd/globals"
	"github.com/agentstation/sherlock/internal/cmd/hints"
	"github.com/agentstation/sherlock/internal/cmd/notify"
)

// NewCommand creates the add command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var run *globals.RunFlags

	cmd := &cobra.Command{
		Use:     "add <namespace> <key> <text>",
		GroupID: "core",
		Short:   "Add a key to every locale",
		Long: `Add writes a text under a dot-separated key in one namespace of the base
locale and of every target locale.

If the text already exists in the namespace, its key is reported and nothing
is written. If it exists in another namespace, every locale receives its
existing translation of that key instead of the base text. Mistyped
intermediate segments are offered for correction; --yes accepts the closest
existing key.`,
		Example: `  sherlock add common greeting.welcome "Welcome"
  sherlock add admin users.title "Users" --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.WriterClient(cmd, app, run)
			if err != nil {
				return err
			}
			res, err := client.Add(cmd.Context(), args[0], args[1], args[2], run.Options()...)
			if err != nil {
				return err
			}
			return render(cmd, app, res, args)
		},
	}

	run = globals.AddRunFlags(cmd)
	return cmd
}

func render(cmd *cobra.Command, app appcontext.Interface, res *sherlock.AddResult, args []string) error {
	n := notify.NewFromCommand(cmd)
	if res.Duplicate != nil {
		format, err := cmdutil.Format(app)
		if err != nil {
			return err
		}
		if format.Structured() {
			return cmdutil.Render(cmd, app, res, nil)
		}
		return n.Info(fmt.Sprintf("The text already exists at %s, nothing added", res.Duplicate))
	}

	for _, c := range res.Corrections {
		if err := n.Info(fmt.Sprintf("Using %q instead of %q", c.To, c.From)); err != nil {
			return err
		}
	}
	if res.ReusedFrom != nil {
		if err := n.Info(fmt.Sprintf("Reusing the translations of %s", res.ReusedFrom)); err != nil {
			return err
		}
	}
	return cmdutil.RenderChanges(cmd, app, res, &res.ChangeResult, hints.Context{
		Command: "add",
		Args:    args,
	})
}
