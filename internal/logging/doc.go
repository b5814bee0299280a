// Package logging provides the console implementation of the multijob.Logger interface.
//
// ConsoleLogger writes formatted messages to any io.Writer; the CLI passes
// the command's error stream. It is safe for concurrent use by multiple goroutines.
package logging
