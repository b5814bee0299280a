package multijob_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/multijob/pkg/multijob"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, multijob.ExitSuccess},
		{"general error", errors.New("something went wrong"), multijob.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag: --foo"), multijob.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), multijob.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), multijob.ExitUsageError},
		{"required flag", errors.New(`required flag(s) "job-id" not set`), multijob.ExitUsageError},
		{"invalid flag value", errors.New(`invalid argument "abc" for "--job-id" flag`), multijob.ExitUsageError},
		{"malformed", &multijob.MalformedArgumentError{Argument: "x"}, multijob.ExitInvalidArgument},
		{"missing special", &multijob.MissingSpecialArgumentError{Name: "job_id", Key: "--id"}, multijob.ExitInvalidArgument},
		{"unknown special", &multijob.UnknownSpecialArgumentError{Keys: []string{"a"}}, multijob.ExitInvalidArgument},
		{"conversion", &multijob.ConversionError{Name: "x", Value: "y", Kind: multijob.NotNumeric}, multijob.ExitInvalidArgument},
		{"missing param", &multijob.MissingParameterError{Name: "x"}, multijob.ExitInvalidArgument},
		{"invalid bool", &multijob.InvalidBooleanError{Name: "x", Value: "y"}, multijob.ExitInvalidArgument},
		{"unconsumed", &multijob.UnconsumedParametersError{Keys: []string{"x"}}, multijob.ExitInvalidArgument},
		{"unknown coercion", &multijob.UnknownCoercionError{Name: "x"}, multijob.ExitInvalidArgument},
		{"wrapped argument error", fmt.Errorf("check: %w", &multijob.MissingParameterError{Name: "x"}), multijob.ExitInvalidArgument},
		{"invalid config", fmt.Errorf("bad key: %w", multijob.ErrInvalidConfig), multijob.ExitConfigError},
		{"invalid job spec", &multijob.JobSpecError{Reason: "at least one repetition required"}, multijob.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := multijob.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorsMatchOnlyTheirSentinel(t *testing.T) {
	errs := map[error]error{
		&multijob.MalformedArgumentError{}:      multijob.ErrMalformedArgument,
		&multijob.MissingSpecialArgumentError{}: multijob.ErrMissingSpecialArgument,
		&multijob.UnknownSpecialArgumentError{}: multijob.ErrUnknownSpecialArgument,
		&multijob.MissingParameterError{}:       multijob.ErrMissingParameter,
		&multijob.InvalidBooleanError{}:         multijob.ErrInvalidBoolean,
		&multijob.UnconsumedParametersError{}:   multijob.ErrUnconsumedParameters,
		&multijob.UnknownCoercionError{}:        multijob.ErrUnknownCoercion,
		&multijob.JobSpecError{}:                multijob.ErrInvalidJobSpec,
	}

	for err, sentinel := range errs {
		if !errors.Is(err, sentinel) {
			t.Errorf("%T does not match %v", err, sentinel)
		}
		for _, other := range errs {
			if other != sentinel && errors.Is(err, other) {
				t.Errorf("%T unexpectedly matches %v", err, other)
			}
		}
	}
}

func TestConversionKind_String(t *testing.T) {
	if got := multijob.NotNumeric.String(); got != "not numeric" {
		t.Errorf("NotNumeric.String() = %q", got)
	}
	if got := multijob.OutOfRange.String(); got != "out of range" {
		t.Errorf("OutOfRange.String() = %q", got)
	}
	if got := multijob.ConversionKind(0).String(); got != "ConversionKind(0)" {
		t.Errorf("ConversionKind(0).String() = %q", got)
	}
}

func TestErrorMessagesArePrefixed(t *testing.T) {
	msg := (&multijob.InvalidBooleanError{Name: "verbose", Value: "yes"}).Error()
	if msg != `multijob: param "verbose" is not boolean: "yes"` {
		t.Errorf("unexpected message %q", msg)
	}
}
