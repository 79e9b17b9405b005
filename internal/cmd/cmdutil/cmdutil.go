// Package cmdutil provides the plumbing shared by sherlock commands: client
// construction with prompts and previews, and result rendering.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/globals"
	"github.com/agentstation/sherlock/internal/cmd/hints"
	"github.com/agentstation/sherlock/internal/cmd/notify"
	"github.com/agentstation/sherlock/internal/cmd/output"
	"github.com/agentstation/sherlock/internal/cmd/preview"
	"github.com/agentstation/sherlock/internal/cmd/prompt"
	"github.com/agentstation/sherlock/internal/cmd/table"
	"github.com/agentstation/sherlock/pkg/resolver"
)

// Format returns the validated output format of the app.
func Format(app appcontext.Interface) (output.Format, error) {
	f, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return "", err
	}
	return output.DetectFormat(string(f)), nil
}

// WriterClient returns a client for commands that write locale files. It asks
// on the terminal before each locale is written, unless --yes was given, and
// prints a line diff of pending changes for table output.
func WriterClient(cmd *cobra.Command, app appcontext.Interface, run *globals.RunFlags) (sherlock.Client, error) {
	format, err := Format(app)
	if err != nil {
		return nil, err
	}
	useColor := !app.NoColor()
	p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr(), useColor)

	var (
		confirmer sherlock.Confirmer = p
		res       resolver.Resolver  = p
	)
	if run.Yes {
		confirmer, res = sherlock.AlwaysConfirm, resolver.AcceptBest
	}
	client, err := app.Client(sherlock.WithConfirmer(confirmer), sherlock.WithResolver(res))
	if err != nil {
		return nil, err
	}

	if !format.Structured() && !globals.Parse(cmd).Quiet {
		printer := preview.New(cmd.ErrOrStderr(), useColor)
		client.OnPending(func(lc sherlock.LocaleChanges) {
			for _, fc := range lc.Files {
				if err := printer.PrintFile(fc); err != nil {
					app.Logger().Warn().Err(err).Str("file", fc.Path).Msg("Cannot print preview")
				}
			}
		})
	}
	return client, nil
}

// Render writes data in the app's output format; rows builds the table.
func Render(cmd *cobra.Command, app appcontext.Interface, data any, rows func(wide bool) table.Data) error {
	format, err := Format(app)
	if err != nil {
		return err
	}
	return output.Print(cmd.OutOrStdout(), format, data, rows)
}

// dryRunOutput adds merge patches to a dry-run result.
type dryRunOutput struct {
	Result  any             `json:"result" yaml:"result"`
	Patches []preview.Patch `json:"patches" yaml:"patches"`
}

// RenderChanges renders the result of a writing command, reports its
// failures and prints the follow-up hints.
func RenderChanges(cmd *cobra.Command, app appcontext.Interface, data any, res *sherlock.ChangeResult, hctx hints.Context) error {
	format, err := Format(app)
	if err != nil {
		return err
	}

	n := notify.NewFromCommand(cmd)
	if format.Structured() {
		if res.DryRun {
			patches, err := preview.Patches(res)
			if err != nil {
				return err
			}
			data = dryRunOutput{Result: data, Patches: patches}
		}
		if err := Render(cmd, app, data, nil); err != nil {
			return err
		}
	} else if rows := table.ChangesToTableData(res); !rows.Empty() {
		if err := Render(cmd, app, rows, nil); err != nil {
			return err
		}
	}

	if err := ReportFailures(n, res.Failures); err != nil {
		return err
	}
	hctx.DryRun = res.DryRun
	hctx.Failures = len(res.Failures)
	return n.Success(Summary(res), hctx)
}

// Summary describes a change result in one line.
func Summary(res *sherlock.ChangeResult) string {
	files := 0
	for _, lc := range res.Locales {
		files += len(lc.Files)
	}
	switch {
	case !res.HasChanges():
		return "Nothing to change"
	case res.DryRun:
		return fmt.Sprintf("Dry run: %d change(s) in %d file(s), nothing written", res.Changes(), files)
	case res.Canceled():
		return "Canceled, nothing written for declined locales"
	default:
		return fmt.Sprintf("Applied %d change(s) to %d file(s)", res.Changes(), files)
	}
}

// ReportFailures warns about files that could not be read or written.
func ReportFailures(n *notify.Notifier, failures sherlock.Failures) error {
	if len(failures) == 0 {
		return nil
	}
	details := make([]string, 0, len(failures))
	for _, f := range failures {
		details = append(details, fmt.Sprintf("%s: %s", f.Path, f.Message))
	}
	return n.Warning(fmt.Sprintf("%d file(s) skipped", len(failures)), details...)
}
