package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/multijob/internal/config"
	"github.com/vvka-141/multijob/pkg/multijob"
)

var checkFlags struct {
	dir             string
	defaultCoercion string
	strict          bool
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] -- <job arguments...>",
	Short: "Parse and type-check a job command line",
	Long: `Parses a job command line exactly like a worker would and consumes every
parameter with its declared type.

Parameter types come from the "types" section of multijob.yaml in the
directory given by --dir. Declared parameters are required. Undeclared
parameters use --default-coercion (or default_coercion from multijob.yaml,
or "str"); with --strict they are rejected.

The special argument keys default to --id and --rep and can be changed with
job_id_key / repetition_id_key in multijob.yaml, or with the
MULTIJOB_JOB_ID_KEY / MULTIJOB_REPETITION_ID_KEY environment variables.
A .env file in --dir is loaded first.

The job command line must follow a "--" so that its tokens are not read
as flags of this command.

Examples:
  multijob check -- --id=4 --rep=7 -- alpha=0.5 name=foo
  multijob check --dir ./job --strict -- --id=4 --rep=7 -- steps=10`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.dir, "dir", "C", ".", "Directory containing multijob.yaml and .env")
	checkCmd.Flags().StringVar(&checkFlags.defaultCoercion, "default-coercion", "", "Coercion for undeclared parameters (str, int, uint, float, bool)")
	checkCmd.Flags().BoolVar(&checkFlags.strict, "strict", false, "Reject parameters not declared in multijob.yaml")

	_ = checkCmd.RegisterFlagCompletionFunc("default-coercion", completeCoercions)
	_ = checkCmd.RegisterFlagCompletionFunc("dir", completeDirectories)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	jobCfg, err := loadJobConfig(checkFlags.dir, logger)
	if err != nil {
		return err
	}

	def, err := resolveDefaultCoercion(jobCfg)
	if err != nil {
		return err
	}

	parsed, err := multijob.ParseCommandline(args, jobCfg.Commandline())
	if err != nil {
		return err
	}
	logger.Verbose("Parsed job %d repetition %d with %d params", parsed.JobID(), parsed.RepetitionID(), parsed.Len())

	typemap := jobCfg.Typemap()
	declared := make([]string, 0, len(typemap))
	for name := range typemap {
		declared = append(declared, name)
	}
	sort.Strings(declared)

	values := make(map[string]any, parsed.Len())
	coercions := make(map[string]multijob.Coercion, parsed.Len())

	for _, name := range declared {
		v, err := parsed.Read(name, typemap[name])
		if err != nil {
			return err
		}
		values[name] = v
		coercions[name] = typemap[name]
	}

	for _, name := range parsed.Remaining() {
		coercions[name] = def
	}
	rest, err := parsed.ReadAll(nil, def)
	if err != nil {
		return err
	}
	for name, v := range rest {
		values[name] = v
	}

	if err := parsed.AssertFullyConsumed(); err != nil {
		return err
	}

	writeCheckReport(cmd.OutOrStdout(), parsed, values, coercions)
	logger.Info("Job %d repetition %d: %d params consumed", parsed.JobID(), parsed.RepetitionID(), len(values))
	return nil
}

// resolveDefaultCoercion picks the coercion for undeclared parameters.
// An empty coercion makes Read reject them.
func resolveDefaultCoercion(jobCfg *config.JobConfig) (multijob.Coercion, error) {
	if checkFlags.strict {
		return "", nil
	}

	def := multijob.Coercion(checkFlags.defaultCoercion)
	if def == "" {
		def = multijob.Coercion(jobCfg.DefaultCoercion)
	}
	if def == "" {
		return multijob.CoerceString, nil
	}
	if !def.Valid() {
		return "", fmt.Errorf("invalid argument %q for \"--default-coercion\" flag: expected str, int, uint, float or bool", string(def))
	}
	return def, nil
}

// loadJobConfig loads .env and multijob.yaml from dir.
// A missing multijob.yaml is not an error.
func loadJobConfig(dir string, logger multijob.Logger) (*config.JobConfig, error) {
	envPath := filepath.Join(dir, ".env")
	if err := godotenv.Load(envPath); err == nil {
		logger.Verbose("Loaded %s", envPath)
	}

	jobCfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	jobCfg.ApplyEnv(os.LookupEnv)

	if err := jobCfg.Validate(); err != nil {
		return nil, err
	}

	cl := jobCfg.Commandline()
	logger.Verbose("Special argument keys: %s, %s", cl.JobIDKey, cl.RepetitionIDKey)
	return jobCfg, nil
}

func writeCheckReport(w io.Writer, args *multijob.Args, values map[string]any, coercions map[string]multijob.Coercion) {
	fmt.Fprintf(w, "%s %d\n", styled(w, headerStyle, "job_id:"), args.JobID())
	fmt.Fprintf(w, "%s %d\n", styled(w, headerStyle, "repetition_id:"), args.RepetitionID())
	fmt.Fprintf(w, "%s %d\n", styled(w, headerStyle, "params:"), len(values))

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := values[name]
		rendered := fmt.Sprint(value)
		if s, ok := value.(string); ok {
			rendered = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(w, "  %s %s = %s\n", name, styled(w, mutedStyle, "("+string(coercions[name])+")"), rendered)
	}
}
