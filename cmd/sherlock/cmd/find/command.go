// Package find provides the find command.
package find

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/cmdutil"
	"github.com/agentstation/sherlock/internal/cmd/notify"
	"github.com/agentstation/sherlock/internal/cmd/table"
)

// NewCommand creates the find command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "find <text>",
		GroupID: "core",
		Short:   "Find where a text lives and how it is translated",
		Long: `Find searches the base locale for a value equal to the text, ignoring case,
and shows the value every target locale holds at the same key.

When the base locale does not hold the text, every target locale is searched
and the matches are reported as orphaned keys.`,
		Example: `  sherlock find "Sign in"
  sherlock find "sign in" -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			res, err := client.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			n := notify.NewFromCommand(cmd)
			if err := cmdutil.ReportFailures(n, res.Failures); err != nil {
				return err
			}
			format, err := cmdutil.Format(app)
			if err != nil {
				return err
			}
			if !res.Found() && !format.Structured() {
				return n.Info(fmt.Sprintf("%q was not found in any locale", res.Text))
			}
			return cmdutil.Render(cmd, app, res, func(bool) table.Data { return table.FindToTableData(res) })
		},
	}
}
