package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/internal/cmd/filter"
)

// RunFlags holds flags of commands that write locale files.
type RunFlags struct {
	DryRun bool
	Yes    bool
}

// AddRunFlags adds --dry-run and --yes to a command.
func AddRunFlags(cmd *cobra.Command) *RunFlags {
	flags := &RunFlags{}
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false,
		"Show what would change without writing files")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false,
		"Apply changes without asking for confirmation")
	return flags
}

// Options returns the run options of the flags.
func (f *RunFlags) Options() []sherlock.RunOption {
	return []sherlock.RunOption{
		sherlock.DryRun(f.DryRun),
		sherlock.AutoApprove(f.Yes),
	}
}

// FilterFlags holds the --where flag of reporting commands.
type FilterFlags struct {
	Where string
}

// AddFilterFlags adds --where to a command.
func AddFilterFlags(cmd *cobra.Command) *FilterFlags {
	flags := &FilterFlags{}
	cmd.Flags().StringVarP(&flags.Where, "where", "w", "",
		`Only report entries matching an expression (e.g. 'Namespace == "admin"')`)
	return flags
}

// Option compiles the expression into a run option.
func (f *FilterFlags) Option() (sherlock.RunOption, error) {
	compiled, err := filter.Compile(f.Where)
	if err != nil {
		return nil, err
	}
	return sherlock.Where(compiled.EntryFilter()), nil
}
