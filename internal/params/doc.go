// Package params parses the key=value parameters given to the multijob tool
// through repeated --param flags.
//
// Unlike the job command line parser in pkg/multijob, these pairs are
// typed by a human, so an empty key is rejected as a probable typo.
package params
