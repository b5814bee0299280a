package multijob

import "sort"

// Args holds the parsed arguments of one job repetition.
// Parameters are retrieved via the Get methods, e.g. GetString().
// Every successful Get removes the parameter, so it can be read exactly once.
type Args struct {
	jobID        uint32
	repetitionID uint32
	params       map[string]string
}

// NewArgs creates a store from the two ids and the normal parameters.
// The params map is copied; later changes by the caller are not visible.
func NewArgs(jobID, repetitionID uint32, params map[string]string) *Args {
	owned := make(map[string]string, len(params))
	for k, v := range params {
		owned[k] = v
	}

	return &Args{
		jobID:        jobID,
		repetitionID: repetitionID,
		params:       owned,
	}
}

// JobID returns the job id.
func (a *Args) JobID() uint32 { return a.jobID }

// RepetitionID returns the repetition id.
func (a *Args) RepetitionID() uint32 { return a.repetitionID }

// Len returns the number of parameters not yet consumed.
func (a *Args) Len() int { return len(a.params) }

// Remaining returns the keys of the parameters not yet consumed, sorted.
func (a *Args) Remaining() []string {
	keys := make([]string, 0, len(a.params))
	for k := range a.params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetString consumes and returns the raw value of a parameter.
func (a *Args) GetString(name string) (string, error) {
	value, ok := a.params[name]
	if !ok {
		return "", &MissingParameterError{Name: name}
	}

	delete(a.params, name)

	return value, nil
}

// GetInt consumes a parameter and parses it as a signed integer.
// The parameter stays consumed when parsing fails.
func (a *Args) GetInt(name string) (int, error) {
	s, err := a.GetString(name)
	if err != nil {
		return 0, err
	}
	return ParseInt(name, s)
}

// GetUint consumes a parameter and parses it as an unsigned integer.
// The parameter stays consumed when parsing fails.
func (a *Args) GetUint(name string) (uint, error) {
	s, err := a.GetString(name)
	if err != nil {
		return 0, err
	}
	return ParseUint(name, s)
}

// GetFloat consumes a parameter and parses it as a float64.
// The parameter stays consumed when parsing fails.
func (a *Args) GetFloat(name string) (float64, error) {
	s, err := a.GetString(name)
	if err != nil {
		return 0, err
	}
	return ParseFloat(name, s)
}

// GetBool consumes a parameter and parses it as a boolean.
// Only "True", "true", "False" and "false" are accepted.
func (a *Args) GetBool(name string) (bool, error) {
	s, err := a.GetString(name)
	if err != nil {
		return false, err
	}

	switch s {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	}

	return false, &InvalidBooleanError{Name: name, Value: s}
}

// AssertFullyConsumed fails if any parameter was never retrieved.
// It does not modify the store.
func (a *Args) AssertFullyConsumed() error {
	if len(a.params) == 0 {
		return nil
	}
	return &UnconsumedParametersError{Keys: a.Remaining()}
}
