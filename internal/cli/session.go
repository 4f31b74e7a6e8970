package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsim/internal/checksum"
	"github.com/vvka-141/vfsim/internal/config"
	"github.com/vvka-141/vfsim/internal/shell"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// loadConfig loads .env and the effective vfsim.yaml, then validates it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	cfg, err := config.Resolve(getConfigFlag(cmd), wd)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", vfsim.ConfigFileName, err)
	}
	if err := cfg.Validate(checkLine); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkLine(line string) error {
	_, err := shell.Parse(line)
	return err
}

// newSession creates a session and runs the configured seed commands into
// it. Seed output is discarded; seed errors are logged.
func newSession(cfg *config.Config, logger vfsim.Logger) (*shell.Session, error) {
	var seedErrors bytes.Buffer
	s := shell.NewSession(io.Discard, &seedErrors, logger)

	for _, line := range cfg.Seed {
		if err := s.Exec(line); err != nil {
			return nil, err
		}
	}
	if seedErrors.Len() > 0 {
		for _, l := range strings.Split(strings.TrimSpace(seedErrors.String()), "\n") {
			logger.Error("seed: %s", l)
		}
	}
	if len(cfg.Seed) > 0 {
		logger.Verbose("seeded %d command(s)", len(cfg.Seed))
	}
	return s, nil
}

// logDigest logs the final shape of the session's tree.
func logDigest(logger vfsim.Logger, s *shell.Session) {
	tree := s.Tree()
	logger.Verbose("tree digest %s (%s nodes)", checksum.New().Tree(tree), humanize.Comma(int64(tree.Len())))
}

// interruptContext returns a context cancelled on Ctrl+C or SIGTERM.
func interruptContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, stopping...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()
	return ctx, cancel
}
