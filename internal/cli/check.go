package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsaccess/pkg/fsaccess"
)

var checkMode string

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Check whether a path can be accessed with the given mode",
	Long: `Check probes a single path for the requested access mode and reports the
verdict. Omitting --mode checks existence only, like POSIX F_OK.

Modes:
  f  Exists      path exists (the default)
  r  Readable    file opens for reading / directory enumerates
  w  Writable    file opens for writing / directory accepts a scratch entry
  x  Executable  file passes the execute-bit probe / directory enumerates

Examples:
  # Existence only
  fsaccess check ./artifacts

  # Is the file readable?
  fsaccess check ./readme.md --mode r

  # Can we drop build output into this directory?
  fsaccess check ./out -m w

  # Is the tool runnable?
  fsaccess check ./bin/tool -m x`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkMode, "mode", "m", "", "Access mode to probe: f, r, w, or x")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	mode, err := fsaccess.ParseMode(checkMode)
	if err != nil {
		return err
	}

	checker, err := buildChecker(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	if err := checker.Access(cmd.Context(), path, mode); err != nil {
		fmt.Printf("%s %s\n", deniedStyle.Render("denied"), detailStyle.Render(err.Error()))
		return err
	}

	fmt.Printf("%s %s %s\n", okStyle.Render("ok"), path, detailStyle.Render("("+mode.String()+")"))
	return nil
}
