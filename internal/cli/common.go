package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fsaccess/internal/config"
	"github.com/vvka-141/fsaccess/internal/logging"
	"github.com/vvka-141/fsaccess/pkg/fsaccess"
)

// buildChecker assembles a Checker from the flag, environment, and project
// configuration layers. Precedence: flags > FSACCESS_* environment (with
// .env loaded via godotenv) > fsaccess.yaml in the working directory.
func buildChecker(cmd *cobra.Command) (*fsaccess.Checker, error) {
	_ = godotenv.Load()

	verbose := getVerboseFlag(cmd) || os.Getenv("FSACCESS_VERBOSE") == "1"

	checkerCfg := fsaccess.CheckerConfig{}
	projectCfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	if projectCfg != nil {
		verbose = verbose || projectCfg.Verbose
		checkerCfg.TestUtility = projectCfg.TestUtility
		checkerCfg.ExecuteExtensions = projectCfg.ExecuteExtensions
	}

	checkerCfg.Logger = logging.NewConsoleLogger(verbose)
	return fsaccess.NewChecker(checkerCfg), nil
}
