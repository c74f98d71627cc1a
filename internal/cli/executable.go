package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsaccess/pkg/fsaccess"
)

var executableCmd = &cobra.Command{
	Use:   "executable <path>",
	Short: "Report whether a file is executable by the current process",
	Long: `Executable answers the standalone boolean form of the X_OK check. On
POSIX-like platforms the execute bit is verified empirically by spawning
the external test utility; elsewhere the filename extension is matched
against the configured allow-list.

The verdict is printed to stdout; the exit code is 0 when executable and
1 otherwise.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE:          runExecutable,
}

func init() {
	rootCmd.AddCommand(executableCmd)
}

func runExecutable(cmd *cobra.Command, args []string) error {
	checker, err := buildChecker(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	if !checker.IsExecutable(cmd.Context(), path) {
		fmt.Printf("%s %s\n", deniedStyle.Render("not executable"), path)
		return fsaccess.ErrNotExecutable
	}

	fmt.Printf("%s %s\n", okStyle.Render("executable"), path)
	return nil
}
