// Package initialize provides the init command.
package initialize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/appcontext"
	"github.com/agentstation/sherlock/internal/cmd/hints"
	"github.com/agentstation/sherlock/internal/cmd/notify"
	"github.com/agentstation/sherlock/internal/config"
)

// NewCommand creates the init command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		fileType string
		dir      string
	)

	cmd := &cobra.Command{
		Use:     "init",
		GroupID: "management",
		Short:   "Write a default project configuration",
		Long: `Init writes a project configuration with the default base locale, target
locales and locale file pattern. An existing configuration is never
overwritten.`,
		Example: `  sherlock init                                  # .i18n-sherlockrc.json
  sherlock init --type yaml                      # .i18n-sherlockrc.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Init(dir, config.Default(), config.FileType(fileType))
			if err != nil {
				return err
			}
			app.Logger().Debug().Str("file", path).Msg("Configuration written")
			return notify.NewFromCommand(cmd).Success(fmt.Sprintf("Wrote %s", path), hints.Context{Command: "init"})
		},
	}

	cmd.Flags().StringVarP(&fileType, "type", "t", string(config.FileTypeJSON), "Configuration format: json, yaml, toml")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory the configuration is written to")
	return cmd
}
