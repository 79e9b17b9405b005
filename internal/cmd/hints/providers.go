package hints

import (
	"fmt"
	"strings"
)

// RegisterProviders registers the standard sherlock hint providers.
func RegisterProviders(registry *Registry) {
	registry.RegisterFunc("dry-run", dryRunHintProvider)
	registry.RegisterFunc("commands", commandHintProvider)
	registry.RegisterFunc("failures", failureHintProvider)
	registry.RegisterFunc("errors", errorRecoveryHintProvider)
}

func dryRunHintProvider(ctx Context) []*Hint {
	if !ctx.DryRun || !ctx.Succeeded {
		return nil
	}
	return []*Hint{NewCommand(
		"Nothing was written, run again without --dry-run to apply",
		rerun(ctx),
	).WithTags("next-step")}
}

// commandHintProvider suggests the step that usually follows a command.
func commandHintProvider(ctx Context) []*Hint {
	if !ctx.Succeeded {
		return nil
	}

	var hints []*Hint
	switch ctx.Command {
	case "audit":
		if ctx.Missing > 0 {
			hints = append(hints, NewCommand(
				"Copy the missing keys from the base locale",
				withArgs("sherlock sync", ctx.Args),
			).WithTags("next-step", "sync"))
			hints = append(hints, NewCommand(
				"Or export them for translators",
				withArgs("sherlock export-missing", ctx.Args),
			).WithTags("next-step", "export"))
		}
	case "export-missing":
		if len(ctx.Files) > 0 {
			hints = append(hints, NewCommand(
				"Translate the exported file, then import it",
				fmt.Sprintf("sherlock import <locale> %s", ctx.Files[0]),
			).WithTags("next-step", "import"))
		}
	case "sync", "import":
		hints = append(hints, NewCommand(
			"Check the remaining coverage",
			"sherlock stats",
		).WithTags("next-step", "stats"))
	case "stats":
		if ctx.Orphans > 0 {
			hints = append(hints, NewCommand(
				"Remove keys the base locale no longer has",
				"sherlock clean",
			).WithTags("next-step", "clean"))
		}
	}
	return hints
}

func failureHintProvider(ctx Context) []*Hint {
	if ctx.Failures == 0 {
		return nil
	}
	return []*Hint{New(
		fmt.Sprintf("%d locale file(s) could not be parsed and were left untouched", ctx.Failures),
	).WithTags("troubleshooting")}
}

func errorRecoveryHintProvider(ctx Context) []*Hint {
	if ctx.Succeeded {
		return nil
	}

	var hints []*Hint
	switch ctx.ErrorType {
	case "not_found":
		hints = append(hints, NewCommand(
			"Check the configured locales",
			"sherlock stats",
		).WithTags("recovery", "config"))
	case "config":
		hints = append(hints, NewCommand(
			"Create a configuration in the current directory",
			"sherlock init",
		).WithTags("recovery", "config"))
	case "parse":
		hints = append(hints, New(
			"Fix the file's syntax, it is skipped until then",
		).WithTags("recovery", "parse"))
	case "permission_denied":
		hints = append(hints, New(
			"Check file permissions of the locale directory",
		).WithTags("recovery", "permissions"))
	}

	if ctx.ErrorType != "" {
		hints = append(hints, NewCommand(
			"Run with verbose output for more details",
			rerun(ctx)+" --verbose",
		).WithTags("troubleshooting", "debugging"))
	}
	return hints
}

func withArgs(command string, args []string) string {
	return strings.Join(append([]string{command}, args...), " ")
}

func rerun(ctx Context) string {
	return withArgs("sherlock "+ctx.Command, ctx.Args)
}
