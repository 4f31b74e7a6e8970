package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireScriptPath validates that exactly one script argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireScriptPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <script>

Usage: %s

Example:
  %s commands.vfs --out out.txt --err err.txt`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
