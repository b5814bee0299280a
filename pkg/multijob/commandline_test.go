package multijob_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/multijob/pkg/multijob"
)

func TestParseCommandline_DecodesIDs(t *testing.T) {
	args, err := multijob.ParseCommandline([]string{"--id=4", "--rep=7", "--", "a=b"}, nil)
	require.NoError(t, err)
	require.NotNil(t, args)

	assert.Equal(t, uint32(4), args.JobID())
	assert.Equal(t, uint32(7), args.RepetitionID())

	b, err := args.GetString("a")
	require.NoError(t, err)
	assert.Equal(t, "b", b)

	_, err = args.GetString("nonexistent")
	assert.ErrorIs(t, err, multijob.ErrMissingParameter)
}

func TestParseCommandline_Values(t *testing.T) {
	args, err := multijob.ParseCommandline([]string{
		"--rep=0", "--id=1", "--",
		"empty=", "eq=b=c", "dup=first", "dup=second", "=anon", "spaced=a b",
	}, nil)
	require.NoError(t, err)

	want := map[string]string{
		"empty":  "",
		"eq":     "b=c",
		"dup":    "second",
		"":       "anon",
		"spaced": "a b",
	}
	assert.Equal(t, len(want), args.Len())
	for k, v := range want {
		got, err := args.GetString(k)
		require.NoError(t, err, "key %q", k)
		assert.Equal(t, v, got, "key %q", k)
	}
	assert.NoError(t, args.AssertFullyConsumed())
}

func TestParseCommandline_WithoutSeparator(t *testing.T) {
	args, err := multijob.ParseCommandline([]string{"--id=3", "--rep=9"}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), args.JobID())
	assert.Equal(t, uint32(9), args.RepetitionID())
	assert.Equal(t, 0, args.Len())
}

func TestParseCommandline_DuplicateSpecialLastWins(t *testing.T) {
	args, err := multijob.ParseCommandline([]string{"--id=1", "--id=2", "--rep=0", "--"}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), args.JobID())
}

func TestParseCommandline_SecondSeparatorIsMalformed(t *testing.T) {
	_, err := multijob.ParseCommandline([]string{"--id=1", "--rep=0", "--", "a=b", "--"}, nil)
	assert.ErrorIs(t, err, multijob.ErrMalformedArgument)
}

func TestParseCommandline_CustomConfig(t *testing.T) {
	cfg := &multijob.Config{JobIDKey: "job", RepetitionIDKey: "rep"}
	args, err := multijob.ParseCommandline([]string{"job=5", "rep=6", "--", "x=1"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), args.JobID())
	assert.Equal(t, uint32(6), args.RepetitionID())

	_, err = multijob.ParseCommandline([]string{"--id=5", "--rep=6", "--"}, cfg)
	assert.ErrorIs(t, err, multijob.ErrMissingSpecialArgument)
}

func TestParseCommandline_PartialConfigUsesDefaults(t *testing.T) {
	cfg := &multijob.Config{JobIDKey: "--job"}
	args, err := multijob.ParseCommandline([]string{"--job=5", "--rep=6"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), args.JobID())
	assert.Equal(t, uint32(6), args.RepetitionID())
}

func TestParseCommandline_Errors(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing --rep",
			argv:    []string{"--id=0", "--"},
			wantErr: multijob.ErrMissingSpecialArgument,
			wantMsg: `multijob: special repetition_id argument "--rep" required`,
		},
		{
			name:    "missing --id",
			argv:    []string{"--rep=0", "--"},
			wantErr: multijob.ErrMissingSpecialArgument,
			wantMsg: `multijob: special job_id argument "--id" required`,
		},
		{
			name:    "empty argv",
			argv:    nil,
			wantErr: multijob.ErrMissingSpecialArgument,
			wantMsg: `multijob: special job_id argument "--id" required`,
		},
		{
			name:    "ids after separator",
			argv:    []string{"--", "--id=0", "--rep=0"},
			wantErr: multijob.ErrMissingSpecialArgument,
		},
		{
			name:    "unknown special arg",
			argv:    []string{"--id=0", "--rep=0", "--this doesn't exist=0", "--"},
			wantErr: multijob.ErrUnknownSpecialArgument,
			wantMsg: `multijob: unknown special arguments before "--" separator: "--this doesn't exist"`,
		},
		{
			name:    "unknown special args are sorted",
			argv:    []string{"--z=1", "--id=0", "--a=2", "--rep=0"},
			wantErr: multijob.ErrUnknownSpecialArgument,
			wantMsg: `multijob: unknown special arguments before "--" separator: "--a", "--z"`,
		},
		{
			name:    "id is not numeric",
			argv:    []string{"--id=x", "--rep=0", "--"},
			wantErr: multijob.ErrNotNumeric,
			wantMsg: `multijob: can't parse job_id: "x" is not numeric`,
		},
		{
			name:    "rep is not numeric",
			argv:    []string{"--id=0", "--rep=x", "--"},
			wantErr: multijob.ErrNotNumeric,
			wantMsg: `multijob: can't parse repetition_id: "x" is not numeric`,
		},
		{
			name:    "id is negative",
			argv:    []string{"--id=-1", "--rep=0"},
			wantErr: multijob.ErrNotNumeric,
		},
		{
			name:    "id overflows 32 bits",
			argv:    []string{"--id=4294967296", "--rep=0"},
			wantErr: multijob.ErrOutOfRange,
		},
		{
			name:    "special arg has no value",
			argv:    []string{"--id", "--rep=0", "--"},
			wantErr: multijob.ErrMalformedArgument,
			wantMsg: `multijob: can't split "--id" as argument`,
		},
		{
			name:    "arg has no value",
			argv:    []string{"--id=0", "--rep=0", "--", "x"},
			wantErr: multijob.ErrMalformedArgument,
			wantMsg: `multijob: can't split "x" as argument`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := multijob.ParseCommandline(tt.argv, nil)
			require.Error(t, err)
			assert.Nil(t, args)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestParseCommandline_StructuredErrors(t *testing.T) {
	_, err := multijob.ParseCommandline([]string{"--id=0", "--"}, nil)
	var missing *multijob.MissingSpecialArgumentError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "repetition_id", missing.Name)
	assert.Equal(t, "--rep", missing.Key)

	_, err = multijob.ParseCommandline([]string{"--id=0", "--rep=0", "--b=", "--a="}, nil)
	var unknown *multijob.UnknownSpecialArgumentError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"--a", "--b"}, unknown.Keys)

	_, err = multijob.ParseCommandline([]string{"--id=0", "--rep=99999999999"}, nil)
	var conv *multijob.ConversionError
	require.True(t, errors.As(err, &conv))
	assert.Equal(t, "repetition_id", conv.Name)
	assert.Equal(t, "99999999999", conv.Value)
	assert.Equal(t, multijob.OutOfRange, conv.Kind)
}

func TestFormatCommandline(t *testing.T) {
	argv, err := multijob.FormatCommandline(42, 3, map[string]string{"c": "foo", "a": "42", "b": "True"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"--id=42", "--rep=3", "--", "a=42", "b=True", "c=foo"}, argv)

	argv, err = multijob.FormatCommandline(1, 2, nil, &multijob.Config{JobIDKey: "job"})
	require.NoError(t, err)
	assert.Equal(t, []string{"job=1", "--rep=2", "--"}, argv)

	_, err = multijob.FormatCommandline(1, 2, map[string]string{"a=b": "c"}, nil)
	assert.ErrorIs(t, err, multijob.ErrMalformedArgument)

	var malformed *multijob.MalformedArgumentError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "a=b", malformed.Key)
	assert.Equal(t, `multijob: can't format param "a=b": key contains "="`, err.Error())
}

func TestFormatCommandline_SeparatorKeyParsesBack(t *testing.T) {
	argv, err := multijob.FormatCommandline(1, 2, map[string]string{"--": "v"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"--id=1", "--rep=2", "--", "--=v"}, argv)

	args, err := multijob.ParseCommandline(argv, nil)
	require.NoError(t, err)
	got, err := args.GetString("--")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestFormatCommandline_ParsesBack(t *testing.T) {
	params := map[string]string{"x": "1,2,3", "conn": "host=localhost", "empty": ""}
	cfg := &multijob.Config{JobIDKey: "--job", RepetitionIDKey: "--repetition"}

	argv, err := multijob.FormatCommandline(4294967295, 0, params, cfg)
	require.NoError(t, err)

	args, err := multijob.ParseCommandline(argv, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), args.JobID())
	assert.Equal(t, uint32(0), args.RepetitionID())

	for k, v := range params {
		got, err := args.GetString(k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.NoError(t, args.AssertFullyConsumed())
}
