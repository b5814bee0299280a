package multijob

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Job completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitInvalidArgument = 10 // Job command line could not be parsed or consumed
	ExitConfigError     = 11 // Invalid multijob.yaml or environment configuration
)

const (
	// Separator divides the special arguments from the normal ones.
	// It is not configurable.
	Separator = "--"

	// DefaultJobIDKey is the special argument carrying the job id.
	DefaultJobIDKey = "--id"

	// DefaultRepetitionIDKey is the special argument carrying the repetition id.
	DefaultRepetitionIDKey = "--rep"

	// errPrefix starts every error message produced by this package.
	errPrefix = "multijob: "
)
