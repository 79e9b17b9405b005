// Package importer provides the import command.
package importer

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/cmdutil"
	"github.com/agentstation/sherlock/internal/cmd/globals"
	"github.com/agentstation/sherlock/internal/cmd/hints"
)

// NewCommand creates the import command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var run *globals.RunFlags

	cmd := &cobra.Command{
		Use:     "import <locale> <file>",
		GroupID: "core",
		Short:   "Import a translated XLIFF document",
		Long: `Import reads an XLIFF 1.2 document produced by export-missing --xliff and
writes its translations into the files of the locale, one value at a time.

Units are addressed by "<namespace>.<key path>". Units of unknown namespaces
or without a namespace are skipped with a warning. A document without any
unit is rejected before anything is written.`,
		Example: `  sherlock import fr fr.xliff                    # Import after confirmation
  sherlock import fr fr.xliff --dry-run          # Preview only`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cmdutil.WriterClient(cmd, app, run)
			if err != nil {
				return err
			}
			res, err := client.Import(cmd.Context(), args[0], args[1], run.Options()...)
			if err != nil {
				return err
			}
			return cmdutil.RenderChanges(cmd, app, res, &res.ChangeResult, hints.Context{
				Command: "import",
				Args:    args,
			})
		},
	}

	run = globals.AddRunFlags(cmd)
	return cmd
}
