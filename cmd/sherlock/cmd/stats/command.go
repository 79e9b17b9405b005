// Package stats provides the stats command.
package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/cmdutil"
	"github.com/agentstation/sherlock/internal/cmd/notify"
	"github.com/agentstation/sherlock/internal/cmd/table"
)

// NewCommand creates the stats command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		GroupID: "core",
		Short:   "Show translation coverage per locale",
		Long: `Stats reports, for every configured target locale, how many keys of the base
locale are present (key coverage) and how many are translated (translation
coverage). A key counts as translated when its value differs from the base,
or when it is present at all for locales allowed to equal the base.

Files that cannot be parsed count as absent.`,
		Example: `  sherlock stats
  sherlock stats -o wide
  sherlock stats -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			res, err := client.Stats(cmd.Context())
			if err != nil {
				return err
			}
			app.Logger().Debug().Int("comparisons", res.Comparisons()).Int("files", res.Files).Msg("Coverage computed")

			if err := cmdutil.Render(cmd, app, res, func(wide bool) table.Data {
				return table.StatsToTableData(res, wide)
			}); err != nil {
				return err
			}
			return cmdutil.ReportFailures(notify.NewFromCommand(cmd), res.Failures)
		},
	}
}
