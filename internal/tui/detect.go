package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode says whether the shell can take over the terminal.
type Mode int

const (
	// ModeNonInteractive reads lines from stdin and writes plain output.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen shell.
	ModeInteractive
)

// NonInteractiveEnvVar forces ModeNonInteractive when set to "1".
const NonInteractiveEnvVar = "VFSIM_NON_INTERACTIVE"

// Environment is what mode detection looks at.
type Environment struct {
	Getenv     func(key string) string
	IsTerminal func(fd int) bool
	Stdin      *os.File
	Stdout     *os.File
}

// ProcessEnvironment describes the running process.
func ProcessEnvironment() Environment {
	return Environment{
		Getenv:     os.Getenv,
		IsTerminal: term.IsTerminal,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
	}
}

// Detect picks the mode for env. Automation markers (VFSIM_NON_INTERACTIVE=1,
// CI, NO_COLOR) win over the terminal check, and both stdin and stdout
// must be terminals for ModeInteractive.
func (env Environment) Detect() Mode {
	if env.Getenv(NonInteractiveEnvVar) == "1" || env.Getenv("CI") != "" || env.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}
	for _, f := range []*os.File{env.Stdin, env.Stdout} {
		if f == nil || !env.IsTerminal(int(f.Fd())) {
			return ModeNonInteractive
		}
	}
	return ModeInteractive
}

// DetectMode detects the mode of the running process.
func DetectMode() Mode {
	return ProcessEnvironment().Detect()
}

// IsInteractive reports whether DetectMode returns ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
