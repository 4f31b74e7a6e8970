package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vfsim/pkg/vfsim"
)

func TestRequireScriptPath(t *testing.T) {
	cmd := &cobra.Command{
		Use: "run <script>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireScriptPath(cmd, []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required argument: <script>")
		assert.Contains(t, err.Error(), "Example:")
		assert.Equal(t, vfsim.ExitUsageError, vfsim.ExitCodeForError(err))
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		assert.NoError(t, RequireScriptPath(cmd, []string{"commands.vfs"}))
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireScriptPath(cmd, []string{"a", "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 1 arg")
		assert.Equal(t, vfsim.ExitUsageError, vfsim.ExitCodeForError(err))
	})
}
