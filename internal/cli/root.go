package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/multijob/internal/logging"
	"github.com/vvka-141/multijob/pkg/multijob"
)

var rootCmd = &cobra.Command{
	Use:   "multijob",
	Short: "Inspect and build batch-job command lines",
	Long: `multijob works with the command lines a job scheduler passes to its workers:

  worker --id=<job> --rep=<repetition> -- key=value key=value ...

Everything before "--" identifies the job repetition, everything after it
is a parameter of the job. Use "check" to parse and type-check a command
line the way a worker would, "format" to build one, and "sweep" to build
the command lines of a whole parameter grid.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Job command line could not be parsed or consumed
  11 - Invalid multijob.yaml or environment configuration`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return execute(rootCmd)
}

// execute runs cmd and reports a failure on its error stream.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		verbose, _ := cmd.PersistentFlags().GetBool("verbose")
		logging.NewWriterLogger(cmd.ErrOrStderr(), verbose).Error("%v", err)
	}
	return err
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

// newLogger returns a logger writing to the command's error stream.
func newLogger(cmd *cobra.Command) multijob.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}
