// Package completion generates shell completion scripts and installs them
// where the shell picks them up.
package completion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/sherlock/internal/cmd/constants"
	"github.com/agentstation/sherlock/internal/cmd/emoji"
	pkgconstants "github.com/agentstation/sherlock/pkg/constants"
	"github.com/agentstation/sherlock/pkg/errors"
)

// Generate writes the completion script of root for shell to w.
func Generate(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case constants.ShellBash:
		return root.GenBashCompletionV2(w, true)
	case constants.ShellZsh:
		return root.GenZshCompletion(w)
	case constants.ShellFish:
		return root.GenFishCompletion(w, true)
	case constants.ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.NewValidationError("shell", shell, "unsupported shell")
	}
}

// Install writes the completion script for shell to its standard location
// and returns the path written.
func Install(root *cobra.Command, shell string, out io.Writer) (string, error) {
	target, err := Path(root.Name(), shell)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), pkgconstants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", filepath.Dir(target), err)
	}

	file, err := os.Create(target) // #nosec G304 - Path comes from Path() which generates controlled paths
	if err != nil {
		return "", errors.WrapIO("create", target, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(out, "Warning: failed to close file: %v\n", closeErr)
		}
	}()

	if err := Generate(root, shell, file); err != nil {
		return "", errors.WrapResource("generate", "completion", shell, err)
	}
	fmt.Fprintf(out, "%s %s completions installed to: %s\n", emoji.Success, shell, target)
	fmt.Fprintf(out, "%s Start a new shell session to enable completions.\n", emoji.Hint)
	return target, nil
}

// Uninstall removes the completion script Install would have written.
func Uninstall(name, shell string, out io.Writer) error {
	target, err := Path(name, shell)
	if err != nil {
		return err
	}
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		fmt.Fprintf(out, "%s No %s completions found at: %s\n", emoji.Info, shell, target)
		return nil
	}
	if err := os.Remove(target); err != nil {
		return errors.WrapIO("remove", target, err)
	}
	fmt.Fprintf(out, "%s Removed %s completions from: %s\n", emoji.Success, shell, target)
	return nil
}

// Path returns where the completion script of the named binary lives for
// shell. Homebrew prefixes win over the user's home directory.
func Path(name, shell string) (string, error) {
	prefix := brewPrefix()
	home, err := os.UserHomeDir()
	if err != nil && prefix == "" {
		return "", errors.WrapIO("resolve", "home directory", err)
	}

	switch shell {
	case constants.ShellBash:
		if prefix != "" {
			return filepath.Join(prefix, "etc", "bash_completion.d", name), nil
		}
		return filepath.Join(home, ".bash_completion.d", name), nil
	case constants.ShellZsh:
		if prefix != "" {
			return filepath.Join(prefix, "share", "zsh", "site-functions", "_"+name), nil
		}
		return filepath.Join(home, ".zsh", "completions", "_"+name), nil
	case constants.ShellFish:
		if prefix != "" {
			return filepath.Join(prefix, "share", "fish", "vendor_completions.d", name+".fish"), nil
		}
		return filepath.Join(home, ".config", "fish", "completions", name+".fish"), nil
	default:
		return "", errors.NewValidationError("shell", shell, "cannot be installed automatically")
	}
}

func brewPrefix() string {
	if p := os.Getenv("HOMEBREW_PREFIX"); p != "" {
		return p
	}
	for _, p := range []string{"/opt/homebrew", "/usr/local"} {
		if _, err := os.Stat(filepath.Join(p, "bin", "brew")); err == nil {
			return p
		}
	}
	return ""
}
