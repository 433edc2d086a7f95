// Package compose provides the command-line interface for the compose
// tool. It parses flags, runs the skeleton composition and hosts the
// auxiliary subcommands (completion, update).
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/skeletool/compose/cmd/compose"
//	func main() { compose.Execute() }
package compose
