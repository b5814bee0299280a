package multijob

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for each failure kind.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	args, err := multijob.ParseCommandline(os.Args[1:], nil)
//	if errors.Is(err, multijob.ErrMissingSpecialArgument) {
//	    // the scheduler did not pass --id or --rep
//	}
var (
	// ErrMalformedArgument indicates a token without the key=value delimiter.
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrMissingSpecialArgument indicates the job id or repetition id was not supplied.
	ErrMissingSpecialArgument = errors.New("missing special argument")

	// ErrUnknownSpecialArgument indicates an unexpected key before the separator.
	ErrUnknownSpecialArgument = errors.New("unknown special argument")

	// ErrConversion indicates a value could not be converted to a number.
	ErrConversion = errors.New("conversion failed")

	// ErrNotNumeric indicates a conversion failed because the value is malformed.
	ErrNotNumeric = errors.New("not numeric")

	// ErrOutOfRange indicates a conversion failed because the value overflows its type.
	ErrOutOfRange = errors.New("out of range")

	// ErrMissingParameter indicates a requested parameter is absent or was already consumed.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidBoolean indicates a value is not one of True, true, False, false.
	ErrInvalidBoolean = errors.New("invalid boolean")

	// ErrUnconsumedParameters indicates parameters remained after the job read its input.
	ErrUnconsumedParameters = errors.New("unconsumed parameters")

	// ErrUnknownCoercion indicates a coercion name that is not supported.
	ErrUnknownCoercion = errors.New("unknown coercion")
)

// MalformedArgumentError reports a token that has no "=".
// When formatting, Key is set instead and names a parameter key that
// contains "=" and therefore could not be parsed back.
type MalformedArgumentError struct {
	Argument string
	Key      string
}

func (e *MalformedArgumentError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf(errPrefix+"can't format param %q: key contains \"=\"", e.Key)
	}
	return fmt.Sprintf(errPrefix+"can't split %q as argument", e.Argument)
}

func (e *MalformedArgumentError) Is(target error) bool {
	return target == ErrMalformedArgument
}

// MissingSpecialArgumentError reports that a mandatory special argument is absent.
// Name is the logical identifier ("job_id" or "repetition_id"), Key the
// command-line key that was expected.
type MissingSpecialArgumentError struct {
	Name string
	Key  string
}

func (e *MissingSpecialArgumentError) Error() string {
	return fmt.Sprintf(errPrefix+"special %s argument %q required", e.Name, e.Key)
}

func (e *MissingSpecialArgumentError) Is(target error) bool {
	return target == ErrMissingSpecialArgument
}

// UnknownSpecialArgumentError lists the unexpected special keys, sorted.
type UnknownSpecialArgumentError struct {
	Keys []string
}

func (e *UnknownSpecialArgumentError) Error() string {
	return fmt.Sprintf(errPrefix+"unknown special arguments before %q separator: %s",
		Separator, joinSortedQuoted(e.Keys, ", "))
}

func (e *UnknownSpecialArgumentError) Is(target error) bool {
	return target == ErrUnknownSpecialArgument
}

// ConversionKind tells why a numeric conversion failed.
type ConversionKind int

const (
	// NotNumeric means the value is not a complete number of the requested type.
	NotNumeric ConversionKind = iota + 1
	// OutOfRange means the value is a number but does not fit the requested type.
	OutOfRange
)

func (k ConversionKind) String() string {
	switch k {
	case NotNumeric:
		return "not numeric"
	case OutOfRange:
		return "out of range"
	default:
		return "ConversionKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ConversionError reports a value that could not be parsed as a number.
type ConversionError struct {
	Name  string
	Value string
	Kind  ConversionKind
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf(errPrefix+"can't parse %s: %q is %s", e.Name, e.Value, e.Kind)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	switch target {
	case ErrConversion:
		return true
	case ErrNotNumeric:
		return e.Kind == NotNumeric
	case ErrOutOfRange:
		return e.Kind == OutOfRange
	}
	return false
}

// MissingParameterError reports a parameter that was never supplied or was already consumed.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf(errPrefix+"param does not exist: %q", e.Name)
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// InvalidBooleanError reports a value that is not an accepted boolean literal.
type InvalidBooleanError struct {
	Name  string
	Value string
}

func (e *InvalidBooleanError) Error() string {
	return fmt.Sprintf(errPrefix+"param %q is not boolean: %q", e.Name, e.Value)
}

func (e *InvalidBooleanError) Is(target error) bool {
	return target == ErrInvalidBoolean
}

// UnconsumedParametersError lists the parameters that were never retrieved, sorted.
type UnconsumedParametersError struct {
	Keys []string
}

func (e *UnconsumedParametersError) Error() string {
	return errPrefix + "params were not consumed: " + joinSortedQuoted(e.Keys, ", ")
}

func (e *UnconsumedParametersError) Is(target error) bool {
	return target == ErrUnconsumedParameters
}

// UnknownCoercionError reports a coercion name that Read does not understand.
type UnknownCoercionError struct {
	Name     string
	Coercion Coercion
}

func (e *UnknownCoercionError) Error() string {
	if e.Coercion == "" {
		return fmt.Sprintf(errPrefix+"no coercion found for %q", e.Name)
	}
	return fmt.Sprintf(errPrefix+"unknown coercion %q for %q", string(e.Coercion), e.Name)
}

func (e *UnknownCoercionError) Is(target error) bool {
	return target == ErrUnknownCoercion
}

// IsArgumentError reports whether err originates from parsing or consuming a job command line.
func IsArgumentError(err error) bool {
	for _, sentinel := range []error{
		ErrMalformedArgument,
		ErrMissingSpecialArgument,
		ErrUnknownSpecialArgument,
		ErrConversion,
		ErrMissingParameter,
		ErrInvalidBoolean,
		ErrUnconsumedParameters,
		ErrUnknownCoercion,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// ErrInvalidConfig indicates the tool configuration (multijob.yaml or environment) is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case IsArgumentError(err):
		return ExitInvalidArgument
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidJobSpec):
		return ExitUsageError
	}

	// cobra reports usage errors as plain strings
	errStr := err.Error()
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"requires at least",
		"required flag",
		"invalid argument",
		"flag needs an argument",
	} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// joinSortedQuoted quotes every item and joins them in lexicographic order.
// The input slice is not modified.
func joinSortedQuoted(items []string, sep string) string {
	strs := make([]string, len(items))
	copy(strs, items)
	sort.Strings(strs)

	for i, s := range strs {
		strs[i] = strconv.Quote(s)
	}

	return strings.Join(strs, sep)
}
