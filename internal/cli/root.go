package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsaccess",
	Short: "Portable POSIX-style file access checks",
	Long: `fsaccess answers whether the current process can access a path for a given
mode (existence, read, write, execute). Because permission bits are not
portable, each mode is verified with a minimal-impact probe: open-and-close,
a single directory read, or a create-then-delete scratch entry. The result
mirrors POSIX access(2), including its check-then-use race.

Exit Codes:
  0  - Access permitted
  1  - General error (or file not executable)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Path does not exist
  11 - Requested access mode not permitted`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
