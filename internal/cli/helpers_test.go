package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
)

func resetFlags() {
	checkFlags.dir = "."
	checkFlags.defaultCoercion = ""
	checkFlags.strict = false

	formatFlags.jobID = 0
	formatFlags.repetitionID = 0
	formatFlags.params = nil
	formatFlags.dir = "."
	formatFlags.shell = false

	sweepFlags.params = nil
	sweepFlags.values = nil
	sweepFlags.ranges = nil
	sweepFlags.linspaces = nil
	sweepFlags.repetitions = 1
	sweepFlags.count = false
	sweepFlags.describe = false
	sweepFlags.dir = "."

	_ = rootCmd.PersistentFlags().Set("verbose", "false")

	// pflag remembers Changed between executions, which defeats required-flag checks
	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), checkCmd.Flags(), formatCmd.Flags(), sweepCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = execute(rootCmd)
	return out.String(), errOut.String(), err
}
