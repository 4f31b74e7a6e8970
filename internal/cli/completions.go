package cli

import (
	"github.com/spf13/cobra"
)

// ScriptExtension is the conventional extension of command scripts.
const ScriptExtension = "vfs"

// completeScriptPath restricts shell completion of the script argument to
// command scripts.
func completeScriptPath(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{ScriptExtension}, cobra.ShellCompDirectiveFilterFileExt
}
