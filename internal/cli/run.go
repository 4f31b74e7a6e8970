package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsim/internal/logging"
	"github.com/vvka-141/vfsim/internal/script"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a command script in batch",
	Long: `Run executes a command script line by line against a fresh tree.

Before each line's output, the 1-based line index is written to both the
output and the error stream, so the two files can be lined up afterwards.
Disable this with line_numbers: false in vfsim.yaml or --no-line-numbers.

Examples:
  vfsim run commands.vfs
  vfsim run commands.vfs --out out.txt --err err.txt`,
	Args:              RequireScriptPath,
	ValidArgsFunction: completeScriptPath,
	RunE:              runScript,
}

type runFlagValues struct {
	out           string
	err           string
	noLineNumbers bool
}

var runFlags runFlagValues

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.out, "out", "", "Write normal output to this file instead of stdout")
	runCmd.Flags().StringVar(&runFlags.err, "err", "", "Write command errors to this file instead of stderr")
	runCmd.Flags().BoolVar(&runFlags.noLineNumbers, "no-line-numbers", false, "Do not write line indexes")
}

func resetRunFlags() {
	runFlags = runFlagValues{}
}

func runScript(cmd *cobra.Command, args []string) (err error) {
	path := args[0]
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	in, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", vfsim.ErrScriptNotFound, path)
		}
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer in.Close()

	out, closeOut, err := openSink(runFlags.out, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeSink(closeOut, &err)
	errOut, closeErr, err := openSink(runFlags.err, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeSink(closeErr, &err)

	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	logger.Verbose("running %s in session %s", path, session.ID())

	runner := script.NewRunner(session, out, errOut, logger,
		script.WithLineNumbers(cfg.LineNumbers && !runFlags.noLineNumbers))

	ctx, cancel := interruptContext()
	defer cancel()

	if _, err := runner.Run(ctx, in); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	logDigest(logger, session)
	return nil
}

// openSink creates the file at path, or returns fallback when path is empty.
func openSink(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", vfsim.ErrOutputFailed, err)
	}
	return f, f.Close, nil
}

func closeSink(closeFn func() error, err *error) {
	if cerr := closeFn(); cerr != nil && *err == nil {
		*err = fmt.Errorf("%w: %v", vfsim.ErrOutputFailed, cerr)
	}
}
