package multijob

import (
	"errors"
	"strconv"
	"strings"
)

// ParseInt parses s as an optionally signed decimal integer of the
// platform int size. The whole string must be consumed.
// name identifies the value in the returned error.
func ParseInt(name, s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, conversionError(name, s, err)
	}
	return int(n), nil
}

// ParseUint parses s as an unsigned decimal integer of the platform uint
// size. A leading sign is rejected as not numeric.
func ParseUint(name, s string) (uint, error) {
	n, err := parseUnsigned(name, s, strconv.IntSize)
	return uint(n), err
}

// ParseUint32 is ParseUint restricted to 32 bits. Job and repetition ids use it.
func ParseUint32(name, s string) (uint32, error) {
	n, err := parseUnsigned(name, s, 32)
	return uint32(n), err
}

// ParseFloat parses s as a decimal or exponential-notation float64,
// for example "40.0123E2". The whole string must be consumed.
// Digit separators ("1_0") are not numeric.
func ParseFloat(name, s string) (float64, error) {
	if strings.ContainsRune(s, '_') {
		return 0, &ConversionError{Name: name, Value: s, Kind: NotNumeric, Err: strconv.ErrSyntax}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, conversionError(name, s, err)
	}
	return f, nil
}

func parseUnsigned(name, s string, bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, conversionError(name, s, err)
	}
	return n, nil
}

// conversionError classifies a strconv failure.
func conversionError(name, s string, err error) *ConversionError {
	kind := NotNumeric
	if errors.Is(err, strconv.ErrRange) {
		kind = OutOfRange
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}

	return &ConversionError{Name: name, Value: s, Kind: kind, Err: err}
}
