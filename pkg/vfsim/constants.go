package vfsim

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Script ran to completion
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid vfsim.yaml
	ExitScriptNotFound = 11 // Script file could not be opened
	ExitOutputError    = 12 // Output or error sink could not be written
)

const (
	// ConfigFileName is the optional per-directory configuration file.
	ConfigFileName = "vfsim.yaml"

	// ConfigEnvVar overrides the configuration file location.
	ConfigEnvVar = "VFSIM_CONFIG"

	// DefaultPrompt is shown by the interactive shell when none is configured.
	DefaultPrompt = "vfsim> "

	// RootName is the reserved name of the root directory.
	RootName = "/"

	// PathSeparator separates path components.
	PathSeparator = "/"
)
