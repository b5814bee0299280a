package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/multijob/internal/params"
	"github.com/vvka-141/multijob/pkg/multijob"
)

var sweepFlags struct {
	params      []string
	values      []string
	ranges      []string
	linspaces   []string
	repetitions int
	count       bool
	describe    bool
	dir         string
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Build the command lines of every job in a parameter grid",
	Long: `Expands a parameter grid into jobs and prints one shell-quoted command line
per job repetition.

Every parameter takes one list of values. The jobs cover every combination
of the lists; parameters are combined in sorted order, the last one varying
fastest. Each combination gets the next job id and is repeated
--repetitions times.

  -p k=v                        a single value
  --values k=a,b,c              the listed values
  --range k=start:end:stride    start, start+stride, ... up to and including end
  --linspace k=start:stop:num   num evenly spaced values, start and stop included

Special argument keys follow the same multijob.yaml / environment lookup as
"multijob check".

Examples:
  multijob sweep --values opt=sgd,adam --range lr=0.1:0.5:0.2 --repetitions 3
  multijob sweep --linspace alpha=0:1:5 --count
  multijob sweep -p seed=1 --values n=10,100 | xargs -L1 ./worker`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringArrayVarP(&sweepFlags.params, "param", "p", nil, "Fixed parameter as key=value (repeatable)")
	sweepCmd.Flags().StringArrayVar(&sweepFlags.values, "values", nil, "Parameter values as key=a,b,c (repeatable)")
	sweepCmd.Flags().StringArrayVar(&sweepFlags.ranges, "range", nil, "Inclusive range as key=start:end:stride (repeatable)")
	sweepCmd.Flags().StringArrayVar(&sweepFlags.linspaces, "linspace", nil, "Evenly spaced values as key=start:stop:num (repeatable)")
	sweepCmd.Flags().IntVarP(&sweepFlags.repetitions, "repetitions", "r", 1, "Repetitions of each parameter combination")
	sweepCmd.Flags().BoolVar(&sweepFlags.count, "count", false, "Only print the number of parameter combinations")
	sweepCmd.Flags().BoolVar(&sweepFlags.describe, "describe", false, "Print job:repetition: k=v summaries instead of command lines")
	sweepCmd.Flags().StringVarP(&sweepFlags.dir, "dir", "C", ".", "Directory containing multijob.yaml and .env")

	_ = sweepCmd.RegisterFlagCompletionFunc("dir", completeDirectories)
}

func runSweep(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	builder, err := buildSweep()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sweepFlags.count {
		fmt.Fprintln(out, builder.NumberOfJobs())
		return nil
	}

	jobCfg, err := loadJobConfig(sweepFlags.dir, logger)
	if err != nil {
		return err
	}

	jobs, err := builder.Build(sweepFlags.repetitions)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		if sweepFlags.describe {
			fmt.Fprintln(out, job.String())
			continue
		}

		argv, err := job.Commandline(jobCfg.Commandline())
		if err != nil {
			return err
		}
		quoted := make([]string, len(argv))
		for i, token := range argv {
			quoted[i] = shellQuote(token)
		}
		fmt.Fprintln(out, strings.Join(quoted, " "))
	}

	logger.Info("Built %d jobs (%d combinations x %d repetitions)",
		len(jobs), builder.NumberOfJobs(), sweepFlags.repetitions)
	return nil
}

// buildSweep collects the grid from the sweep flags.
func buildSweep() (*multijob.JobBuilder, error) {
	fixed, err := params.ParseKeyValuePairs(sweepFlags.params)
	if err != nil {
		return nil, err
	}
	builder := multijob.NewJobBuilder(fixed)

	for _, arg := range sweepFlags.values {
		key, list, err := params.SplitPair("--values", arg)
		if err != nil {
			return nil, err
		}
		if err := builder.Add(key, strings.Split(list, ",")...); err != nil {
			return nil, err
		}
	}

	for _, arg := range sweepFlags.ranges {
		key, nums, err := splitNumbers("--range", arg)
		if err != nil {
			return nil, err
		}
		var bounds [3]float64
		for i, name := range []string{"start", "end", "stride"} {
			if bounds[i], err = multijob.ParseFloat(name, nums[i]); err != nil {
				return nil, fmt.Errorf("invalid argument %q for \"--range\" flag: %v", arg, err)
			}
		}
		if _, err := builder.AddRange(key, bounds[0], bounds[1], bounds[2]); err != nil {
			return nil, err
		}
	}

	for _, arg := range sweepFlags.linspaces {
		key, nums, err := splitNumbers("--linspace", arg)
		if err != nil {
			return nil, err
		}
		var bounds [2]float64
		for i, name := range []string{"start", "stop"} {
			if bounds[i], err = multijob.ParseFloat(name, nums[i]); err != nil {
				return nil, fmt.Errorf("invalid argument %q for \"--linspace\" flag: %v", arg, err)
			}
		}
		num, err := multijob.ParseInt("num", nums[2])
		if err != nil {
			return nil, fmt.Errorf("invalid argument %q for \"--linspace\" flag: %v", arg, err)
		}
		if _, err := builder.AddLinspace(key, bounds[0], bounds[1], num); err != nil {
			return nil, err
		}
	}

	return builder, nil
}

// splitNumbers splits "key=a:b:c" into its key and three fields.
func splitNumbers(flag, arg string) (string, []string, error) {
	key, value, err := params.SplitPair(flag, arg)
	if err != nil {
		return "", nil, err
	}
	nums := strings.Split(value, ":")
	if len(nums) != 3 {
		return "", nil, fmt.Errorf("invalid argument %q for %q flag: expected three values separated by \":\"", arg, flag)
	}
	return key, nums, nil
}
