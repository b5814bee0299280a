package params

import (
	"fmt"
	"strings"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
// The value is everything after the first "="; a repeated key keeps its last value.
//
// Example:
//
//	params, err := ParseKeyValuePairs([]string{"alpha=0.5", "conn=host=db"})
//	// Returns: map[string]string{"alpha": "0.5", "conn": "host=db"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, err := SplitPair("--param", pair)
		if err != nil {
			return nil, err
		}
		result[key] = value
	}

	return result, nil
}

// SplitPair splits one "key=value" flag value at its first "=".
// flag names the flag in the error message.
func SplitPair(flag, pair string) (key, value string, err error) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid argument %q for %q flag: not in key=value format (example: %s alpha=0.5)", pair, flag, flag)
	}

	if key == "" {
		return "", "", fmt.Errorf("invalid argument %q for %q flag: empty key", pair, flag)
	}

	return key, value, nil
}
