// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

// palisade runs commands confined under capability profiles.
//
// Usage:
//
//	palisade run [flags] -- <program> [args...]
//	palisade check [flags]
//	palisade support
//	palisade list-profiles
//	palisade show-profile <name>
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/palisade/lib/process"
	"github.com/bureau-foundation/palisade/lib/version"
	"github.com/bureau-foundation/palisade/sandbox"
)

func main() {
	// Trampoline dispatch comes before everything else: a child
	// carrying a payload must never fall through into normal CLI
	// logic.
	if sandbox.Entered() {
		sandbox.ChildMain() // never returns
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger := newCommandLogger()
	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = runCmd(args, logger)
	case "check":
		err = checkCmd(args, logger)
	case "support":
		err = supportCmd(args)
	case "list-profiles":
		err = listProfilesCmd(args, logger)
	case "show-profile":
		err = showProfileCmd(args, logger)
	case "version", "--version", "-v":
		version.Print("palisade")
		return
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		process.Fatal(err)
	}
}

func printUsage() {
	fmt.Print(`palisade - Run commands confined under capability profiles

USAGE
    palisade <command> [flags] [-- <args>...]

COMMANDS
    run            Run a program under a profile
    check          Report per-operation platform support for a profile
    support        Show the host snapshot and support matrix
    list-profiles  List available profiles
    show-profile   Show a profile's definition
    version        Show version

EXAMPLES
    # Run a build confined to toolchain reads
    palisade run --profile=toolchain-read -- /usr/bin/make all

    # Check whether a profile document validates on this host
    palisade check --profile=fetch --profile-file=./profiles.yaml

    # Capture the child's output alongside the live stream
    palisade run --profile=network-client --capture=out.zst -- /usr/bin/curl -s https://example.com

ENVIRONMENT
    PALISADE_DEBUG  Enable debug logging

Profile documents are loaded from built-in defaults, then
/etc/palisade/profiles.yaml, then the user config directory, then
any --profile-file flags; later documents override earlier ones.
`)
}

// exitError propagates a child's exit code (or 128+signal) through
// the error return of a subcommand to the process exit status.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
