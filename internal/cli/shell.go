package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsim/internal/logging"
	"github.com/vvka-141/vfsim/internal/script"
	"github.com/vvka-141/vfsim/internal/tui"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long: `Shell opens an interactive prompt over a fresh tree.

Type exit or quit, or press Esc or Ctrl+C, to leave. Tab completes paths.

When stdin is not a terminal (or CI, NO_COLOR or VFSIM_NON_INTERACTIVE=1
is set) the shell reads commands from stdin line by line instead.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	logger.Verbose("shell session %s", session.ID())

	ctx, cancel := interruptContext()
	defer cancel()

	if tui.IsInteractive() {
		err = tui.RunShell(ctx, session, logger, tui.ShellOptions{Prompt: cfg.Prompt, Color: cfg.Color})
	} else {
		runner := script.NewRunner(session, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger,
			script.WithLineNumbers(cfg.LineNumbers))
		_, err = runner.Run(ctx, cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	logDigest(logger, session)
	return nil
}
