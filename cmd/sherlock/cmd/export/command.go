// Package export provides the export-missing command.
package export

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

// Flags holds the export-missing flags.
type Flags struct {
	XLIFF  bool
	Force  bool
	Out    string
	DryRun bool
}

// NewCommand creates the export-missing command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}
	var where *globals.FilterFlags

	cmd := &cobra.Command{
		Use:     "export-missing <locale...|all>",
		GroupID: "core",
		Short:   "Export the keys that still need translation",
		Long: `Export-missing writes, for every target locale, the keys that are missing or
still equal to the base locale.

By default a flat JSON report is written to <locale>-require-translation.json,
each value annotated with its status. With --xliff an XLIFF 1.2 document
<locale>.xliff is written instead, ready for translation tools. Locales that
may equal the base get no XLIFF document. Fully translated locales produce no
file, and existing files are kept unless --force is given.`,
		Example: `  sherlock export-missing fr                     # Flat report for fr
  sherlock export-missing all --xliff            # XLIFF for every locale
  sherlock export-missing es fr --out ./exports --force`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			filter, err := where.Option()
			if err != nil {
				return err
			}

			res, err := client.ExportMissing(cmd.Context(), args,
				sherlock.AsXLIFF(flags.XLIFF),
				sherlock.Force(flags.Force),
				sherlock.OutputDir(flags.Out),
				sherlock.DryRun(flags.DryRun),
				filter,
			)
			if err != nil {
				return err
			}
			return render(cmd, app, res)
		},
	}

	cmd.Flags().BoolVar(&flags.XLIFF, "xliff", false, "Write XLIFF 1.2 documents instead of flat reports")
	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Overwrite existing export files")
	cmd.Flags().StringVar(&flags.Out, "out", ".", "Directory the files are written to")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Report what would be exported without writing files")
	where = globals.AddFilterFlags(cmd)
	return cmd
}

func render(cmd *cobra.Command, app appcontext.Interface, res *sherlock.ExportResult) error {
	if err := cmdutil.Render(cmd, app, res, func(bool) table.Data { return table.ExportToTableData(res) }); err != nil {
		return err
	}

	n := notify.NewFromCommand(cmd)
	if err := cmdutil.ReportFailures(n, res.Failures); err != nil {
		return err
	}

	var files []string
	for _, f := range res.Files {
		if f.Written {
			files = append(files, f.Path)
		}
	}
	message := fmt.Sprintf("Wrote %d export file(s)", len(files))
	if res.DryRun {
		message = "Dry run, no export file written"
	}
	return n.Success(message, hints.Context{
		Command:  "export-missing",
		DryRun:   res.DryRun,
		Files:    files,
		Failures: len(res.Failures),
	})
}
