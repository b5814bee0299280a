package multijob

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidJobSpec indicates a parameter grid that can't be turned into jobs.
var ErrInvalidJobSpec = errors.New("invalid job specification")

// JobSpecError reports why a parameter list or a build request was rejected.
// Param is empty when the failure is not tied to one parameter.
type JobSpecError struct {
	Param  string
	Reason string
}

func (e *JobSpecError) Error() string {
	if e.Param == "" {
		return errPrefix + "can't build jobs: " + e.Reason
	}
	return fmt.Sprintf(errPrefix+"can't add param %q: %s", e.Param, e.Reason)
}

func (e *JobSpecError) Is(target error) bool {
	return target == ErrInvalidJobSpec
}

// Job is one concrete parameter set of a sweep.
type Job struct {
	JobID        uint32
	RepetitionID uint32
	Params       map[string]string
}

// Commandline returns the argument list a scheduler passes to this job.
// A nil cfg uses DefaultConfig.
func (j Job) Commandline(cfg *Config) ([]string, error) {
	return FormatCommandline(j.JobID, j.RepetitionID, j.Params, cfg)
}

// String formats the job as "<job>:<rep>: k=v ..." with keys sorted.
func (j Job) String() string {
	keys := make([]string, 0, len(j.Params))
	for k := range j.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d:", j.JobID, j.RepetitionID)
	for _, k := range keys {
		b.WriteString(" " + k + "=" + j.Params[k])
	}
	return b.String()
}

// JobBuilder collects a list of values per parameter and expands them into
// every combination.
type JobBuilder struct {
	lists map[string][]string
}

// NewJobBuilder returns a builder with a single value for each default.
func NewJobBuilder(defaults map[string]string) *JobBuilder {
	b := &JobBuilder{lists: make(map[string][]string, len(defaults))}
	for param, value := range defaults {
		b.lists[param] = []string{value}
	}
	return b
}

func (b *JobBuilder) addList(param string, values []string) error {
	if _, ok := b.lists[param]; ok {
		return &JobSpecError{Param: param, Reason: "redefinition of parameter"}
	}
	b.lists[param] = values
	return nil
}

// Add defines the values of param. A parameter can be defined once.
func (b *JobBuilder) Add(param string, values ...string) error {
	list := make([]string, len(values))
	copy(list, values)
	return b.addList(param, list)
}

// AddRange defines param as the inclusive range start, start+stride, ...
// up to end. end is left out when (end-start)/stride is not integral.
func (b *JobBuilder) AddRange(param string, start, end, stride float64) ([]float64, error) {
	if !finite(start, end, stride) {
		return nil, &JobSpecError{Param: param, Reason: "range bounds must be finite"}
	}
	if !(start < end) {
		return nil, &JobSpecError{Param: param, Reason: "start must be smaller than end"}
	}
	if stride <= 0 {
		return nil, &JobSpecError{Param: param, Reason: "stride must be positive"}
	}

	var values []float64
	for n := 0; ; n++ {
		v := start + float64(n)*stride
		if v > end {
			break
		}
		values = append(values, v)
	}

	if err := b.addList(param, formatFloats(values)); err != nil {
		return nil, err
	}
	return values, nil
}

// AddLinspace defines param as num evenly spaced values from start to stop,
// both included.
func (b *JobBuilder) AddLinspace(param string, start, stop float64, num int) ([]float64, error) {
	if !finite(start, stop) {
		return nil, &JobSpecError{Param: param, Reason: "range bounds must be finite"}
	}
	if !(start < stop) {
		return nil, &JobSpecError{Param: param, Reason: "start must be smaller than stop"}
	}
	if num < 2 {
		return nil, &JobSpecError{Param: param, Reason: "num must be at least 2 to include the start and stop"}
	}

	stride := (stop - start) / float64(num-1)
	values := make([]float64, num)
	for n := range values {
		values[n] = start + float64(n)*stride
	}

	if err := b.addList(param, formatFloats(values)); err != nil {
		return nil, err
	}
	return values, nil
}

// NumberOfJobs is the number of distinct parameter combinations.
// An empty builder has exactly one, the empty combination.
func (b *JobBuilder) NumberOfJobs() int {
	num := 1
	for _, values := range b.lists {
		num *= len(values)
	}
	return num
}

// Build expands every combination into repetitions jobs.
//
// Parameters are combined in sorted key order with the last key varying
// fastest. Each combination gets the next job id; its repetitions share
// that id and are numbered from 0.
func (b *JobBuilder) Build(repetitions int) ([]Job, error) {
	if repetitions < 1 {
		return nil, &JobSpecError{Reason: "at least one repetition required"}
	}

	combinations := b.NumberOfJobs()
	if uint64(combinations) > math.MaxUint32+1 || uint64(repetitions) > math.MaxUint32+1 ||
		(combinations > 0 && repetitions > math.MaxInt/combinations) {
		return nil, &JobSpecError{Reason: "too many jobs for 32-bit ids"}
	}
	if combinations == 0 {
		return []Job{}, nil
	}

	keys := make([]string, 0, len(b.lists))
	for k := range b.lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	jobs := make([]Job, 0, combinations*repetitions)
	index := make([]int, len(keys))

	for jobID := 0; jobID < combinations; jobID++ {
		for rep := 0; rep < repetitions; rep++ {
			params := make(map[string]string, len(keys))
			for i, k := range keys {
				params[k] = b.lists[k][index[i]]
			}
			jobs = append(jobs, Job{
				JobID:        uint32(jobID),
				RepetitionID: uint32(rep),
				Params:       params,
			})
		}

		for i := len(keys) - 1; i >= 0; i-- {
			index[i]++
			if index[i] < len(b.lists[keys[i]]) {
				break
			}
			index[i] = 0
		}
	}

	return jobs, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func formatFloats(values []float64) []string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strs
}
