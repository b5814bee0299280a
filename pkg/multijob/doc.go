// Package multijob parses the command line of a batch-job worker.
//
// A worker is launched once per repetition of a job. Its arguments carry two
// mandatory identifiers before a "--" separator and any number of user
// parameters after it:
//
//	worker --id=42 --rep=3 -- alpha=0.5 name=foo verbose=true
//
// ParseCommandline turns such an argument list into an Args store. Each
// parameter can be retrieved exactly once through the typed Get methods, and
// AssertFullyConsumed reports parameters that were never read:
//
//	args, err := multijob.ParseCommandline(os.Args[1:], nil)
//	if err != nil {
//	    ...
//	}
//
//	alpha, err := args.GetFloat("alpha")
//	if err != nil {
//	    ...
//	}
//
//	if err := args.AssertFullyConsumed(); err != nil {
//	    ...
//	}
//
// # Job Grids
//
// The scheduler side builds those command lines. A JobBuilder takes a list of
// values per parameter, and Build expands every combination into jobs whose
// Commandline parses back with ParseCommandline:
//
//	b := multijob.NewJobBuilder(map[string]string{"seed": "1"})
//	_ = b.Add("opt", "sgd", "adam")
//	_, _ = b.AddRange("lr", 0.1, 0.5, 0.2)
//	jobs, err := b.Build(3) // 6 combinations, 3 repetitions each
//
// # Errors
//
// Every failure is returned as one of the structured error types in this
// package (MalformedArgumentError, ConversionError, ...). Each of them
// matches a sentinel error with errors.Is, and can be inspected with
// errors.As. Messages are prefixed with "multijob: " and list keys in sorted
// order, so they are stable across runs.
//
// # Thread Safety
//
// Args is not safe for concurrent use. The free functions are.
package multijob
