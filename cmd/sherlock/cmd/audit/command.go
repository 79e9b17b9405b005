// Package audit provides the audit command.
package audit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/cmdutil"
	"github.com/agentstation/sherlock/internal/cmd/globals"
	"github.com/agentstation/sherlock/internal/cmd/hints"
	"github.com/agentstation/sherlock/internal/cmd/notify"
	"github.com/agentstation/sherlock/internal/cmd/table"
)

// NewCommand creates the audit command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		orphans bool
		where   *globals.FilterFlags
	)

	cmd := &cobra.Command{
		Use:     "audit <locale>",
		GroupID: "core",
		Short:   "List the keys a locale is missing",
		Long: `Audit compares the structure of a target locale with the base locale and
lists every key the target lacks, per namespace. Values that are present but
equal to the base are not reported; use export-missing for those.

With --orphans, keys the target has and the base does not are listed too.`,
		Example: `  sherlock audit fr                              # Missing keys of fr
  sherlock audit fr --orphans                    # Also list orphaned keys
  sherlock audit fr --where 'Namespace == "admin"'
  sherlock audit fr -o json                      # Machine-readable report`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			filter, err := where.Option()
			if err != nil {
				return err
			}

			res, err := client.Audit(cmd.Context(), args[0], sherlock.IncludeOrphans(orphans), filter)
			if err != nil {
				return err
			}
			return render(cmd, app, res, args)
		},
	}

	cmd.Flags().BoolVar(&orphans, "orphans", false, "Also list keys the base locale does not have")
	where = globals.AddFilterFlags(cmd)
	return cmd
}

func render(cmd *cobra.Command, app appcontext.Interface, res *sherlock.AuditResult, args []string) error {
	format, err := cmdutil.Format(app)
	if err != nil {
		return err
	}
	if format.Structured() || !res.Clean() {
		if err := cmdutil.Render(cmd, app, res, func(bool) table.Data { return table.AuditToTableData(res) }); err != nil {
			return err
		}
	}

	n := notify.NewFromCommand(cmd)
	if err := cmdutil.ReportFailures(n, res.Failures); err != nil {
		return err
	}
	if len(res.AbsentNamespaces) > 0 {
		if err := n.Warning(fmt.Sprintf("%s has no file for %d namespace(s)", res.Locale, len(res.AbsentNamespaces)), res.AbsentNamespaces...); err != nil {
			return err
		}
	}
	if len(res.ExtraNamespaces) > 0 {
		if err := n.Info(fmt.Sprintf("%s has namespace(s) the base does not: %v", res.Locale, res.ExtraNamespaces)); err != nil {
			return err
		}
	}

	message := fmt.Sprintf("%s has every key of %s", res.Locale, res.BaseLocale)
	if res.Missing() > 0 {
		message = fmt.Sprintf("%s is missing %d key(s) of %s", res.Locale, res.Missing(), res.BaseLocale)
	}
	if len(res.Orphans) > 0 {
		message += fmt.Sprintf(", %d orphaned key(s)", len(res.Orphans))
	}
	return n.Success(message, hints.Context{
		Command:  "audit",
		Args:     args,
		Missing:  res.Missing(),
		Orphans:  len(res.Orphans),
		Failures: len(res.Failures),
	})
}
