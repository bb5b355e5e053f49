// Package xlog is a thin logging shim over the standard library's log
// package, in the style of afb2001-CCOM_planner's util.PrintLog/PrintError:
// a couple of prefixed helpers and a package-level verbosity switch, nothing
// more.
package xlog

import "log"

// Verbose gates Debugf output. Off by default; the CLI flips it on with -v.
var Verbose = false

// Infof logs an informational planner message.
func Infof(format string, args ...interface{}) {
	log.Printf("hybridplan: "+format, args...)
}

// Debugf logs only when Verbose is set.
func Debugf(format string, args ...interface{}) {
	if Verbose {
		Infof(format, args...)
	}
}

// Fatalf logs a message and terminates the process. Reserved for CLI-level
// input errors; the planner core never calls this (it returns errors
// instead, see planner.ErrInvalidEndpoint and friends).
func Fatalf(format string, args ...interface{}) {
	log.Fatalf("hybridplan: "+format, args...)
}
