package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for spinesort.

To load completions:

Bash:
  $ source <(spinesort completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ spinesort completion bash > /etc/bash_completion.d/spinesort
  # macOS:
  $ spinesort completion bash > $(brew --prefix)/etc/bash_completion.d/spinesort

Zsh:
  $ spinesort completion zsh > "${fpath[1]}/_spinesort"

Fish:
  $ spinesort completion fish > ~/.config/fish/completions/spinesort.fish

PowerShell:
  PS> spinesort completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
