package multijob

import (
	"fmt"
	"sort"
	"strings"
)

// Config names the special arguments that carry the two ids.
// Empty fields fall back to DefaultJobIDKey and DefaultRepetitionIDKey.
type Config struct {
	JobIDKey        string
	RepetitionIDKey string
}

// DefaultConfig returns the standard "--id" / "--rep" configuration.
func DefaultConfig() Config {
	return Config{
		JobIDKey:        DefaultJobIDKey,
		RepetitionIDKey: DefaultRepetitionIDKey,
	}
}

// withDefaults resolves a possibly nil or partial config.
func (c *Config) withDefaults() Config {
	cfg := DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.JobIDKey != "" {
		cfg.JobIDKey = c.JobIDKey
	}
	if c.RepetitionIDKey != "" {
		cfg.RepetitionIDKey = c.RepetitionIDKey
	}
	return cfg
}

// ParseCommandline parses a job command line. arguments must not include
// the program name. A nil cfg uses DefaultConfig.
//
// Tokens before the "--" separator are special arguments; exactly the job id
// and repetition id keys must be present there. Tokens after it become the
// parameters of the returned Args. Without a separator, every token is special.
// Every token must have the form key=value; a repeated key keeps its last value.
func ParseCommandline(arguments []string, cfg *Config) (*Args, error) {
	conf := cfg.withDefaults()

	special, normal, err := separateArguments(arguments, Separator)
	if err != nil {
		return nil, err
	}

	jobIDStr, err := takeSpecial(special, "job_id", conf.JobIDKey)
	if err != nil {
		return nil, err
	}

	repetitionIDStr, err := takeSpecial(special, "repetition_id", conf.RepetitionIDKey)
	if err != nil {
		return nil, err
	}

	if len(special) > 0 {
		keys := make([]string, 0, len(special))
		for k := range special {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, &UnknownSpecialArgumentError{Keys: keys}
	}

	jobID, err := ParseUint32("job_id", jobIDStr)
	if err != nil {
		return nil, err
	}

	repetitionID, err := ParseUint32("repetition_id", repetitionIDStr)
	if err != nil {
		return nil, err
	}

	return &Args{
		jobID:        jobID,
		repetitionID: repetitionID,
		params:       normal,
	}, nil
}

// FormatCommandline builds the argument list that ParseCommandline turns back
// into the given ids and params. Params are emitted in sorted key order.
// A nil cfg uses DefaultConfig.
func FormatCommandline(jobID, repetitionID uint32, params map[string]string, cfg *Config) ([]string, error) {
	conf := cfg.withDefaults()

	keys := make([]string, 0, len(params))
	for k := range params {
		if strings.Contains(k, "=") {
			return nil, &MalformedArgumentError{Key: k}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	argv := make([]string, 0, len(keys)+3)
	argv = append(argv,
		fmt.Sprintf("%s=%d", conf.JobIDKey, jobID),
		fmt.Sprintf("%s=%d", conf.RepetitionIDKey, repetitionID),
		Separator,
	)
	for _, k := range keys {
		argv = append(argv, k+"="+params[k])
	}

	return argv, nil
}

// takeSpecial removes a mandatory key from the special arguments.
func takeSpecial(special map[string]string, name, key string) (string, error) {
	value, ok := special[key]
	if !ok {
		return "", &MissingSpecialArgumentError{Name: name, Key: key}
	}
	delete(special, key)
	return value, nil
}

// separateArguments splits argv around the first sep token into special and
// normal key/value maps.
func separateArguments(argv []string, sep string) (special, normal map[string]string, err error) {
	special = make(map[string]string)
	normal = make(map[string]string)

	i := 0
	for ; i < len(argv); i++ {
		if argv[i] == sep {
			i++
			break
		}
		if err := splitInto(special, argv[i]); err != nil {
			return nil, nil, err
		}
	}

	for ; i < len(argv); i++ {
		if err := splitInto(normal, argv[i]); err != nil {
			return nil, nil, err
		}
	}

	return special, normal, nil
}

func splitInto(m map[string]string, arg string) error {
	key, value, err := splitArg(arg)
	if err != nil {
		return err
	}
	m[key] = value
	return nil
}

// splitArg splits a "key=value" argument at its first "=".
func splitArg(arg string) (key, value string, err error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return "", "", &MalformedArgumentError{Argument: arg}
	}
	return key, value, nil
}
