package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/multijob/internal/params"
	"github.com/vvka-141/multijob/pkg/multijob"
)

var formatFlags struct {
	jobID        uint32
	repetitionID uint32
	params       []string
	dir          string
	shell        bool
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Build the command line for one job repetition",
	Long: `Prints the command line a scheduler passes to a worker for one repetition
of a job. Parameters are emitted in sorted order, one token per line.
With --shell the tokens are printed on a single line, quoted for POSIX shells.

Special argument keys follow the same multijob.yaml / environment lookup as
"multijob check".

Examples:
  multijob format --job-id 42 --repetition-id 3 -p alpha=0.5 -p name=foo
  ./worker $(multijob format --job-id 1 --repetition-id 0 --shell -p n=10)`,
	Args: cobra.NoArgs,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().Uint32Var(&formatFlags.jobID, "job-id", 0, "Job id (required)")
	formatCmd.Flags().Uint32Var(&formatFlags.repetitionID, "repetition-id", 0, "Repetition id (required)")
	formatCmd.Flags().StringArrayVarP(&formatFlags.params, "param", "p", nil, "Job parameter as key=value (repeatable)")
	formatCmd.Flags().StringVarP(&formatFlags.dir, "dir", "C", ".", "Directory containing multijob.yaml and .env")
	formatCmd.Flags().BoolVar(&formatFlags.shell, "shell", false, "Print a single shell-quoted line")

	_ = formatCmd.MarkFlagRequired("job-id")
	_ = formatCmd.MarkFlagRequired("repetition-id")
	_ = formatCmd.RegisterFlagCompletionFunc("dir", completeDirectories)
}

func runFormat(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	jobCfg, err := loadJobConfig(formatFlags.dir, logger)
	if err != nil {
		return err
	}

	kv, err := params.ParseKeyValuePairs(formatFlags.params)
	if err != nil {
		return err
	}

	argv, err := multijob.FormatCommandline(formatFlags.jobID, formatFlags.repetitionID, kv, jobCfg.Commandline())
	if err != nil {
		return err
	}
	logger.Verbose("Formatted %d tokens", len(argv))

	out := cmd.OutOrStdout()
	if formatFlags.shell {
		quoted := make([]string, len(argv))
		for i, token := range argv {
			quoted[i] = shellQuote(token)
		}
		fmt.Fprintln(out, strings.Join(quoted, " "))
		return nil
	}

	for _, token := range argv {
		fmt.Fprintln(out, token)
	}
	return nil
}
