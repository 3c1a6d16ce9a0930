// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package sandbox

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/palisade/enforce"
	"github.com/bureau-foundation/palisade/profile"
)

// ChildMain is the trampoline child entry point. It never returns:
// on success the process image is replaced by the target program; on
// any failure it writes a diagnostic to stderr and exits 127. A
// half-confined child has no safe continuation path, so there is no
// error return to mishandle.
func ChildMain() {
	err := childMain(os.Getenv(PayloadEnv))
	fmt.Fprintf(os.Stderr, "palisade: sandbox child: %v\n", err)
	os.Exit(127)
}

// childMain returns only on failure; success ends in exec.
func childMain(encoded string) error {
	pl, err := decodePayload(encoded)
	if err != nil {
		return err
	}

	// Re-validate from the declarative form. The payload crossed a
	// process boundary; trusting the parent's validation would let
	// a tampered payload activate an imprecise profile.
	ops, err := pl.compileOperations()
	if err != nil {
		return err
	}
	prof, err := profile.New(ops)
	if err != nil {
		return fmt.Errorf("re-validating profile: %w", err)
	}

	if err := pl.verifyTarget(); err != nil {
		return err
	}

	backend, err := enforce.New()
	if err != nil {
		return err
	}

	// Last security-relevant action before the target runs. After
	// this the restriction set can only shrink, for this process
	// and everything it spawns.
	if err := prof.Activate(backend); err != nil {
		return err
	}

	argv := append([]string{pl.Path}, pl.Args...)
	err = unix.Exec(pl.Path, argv, pl.Env)
	// Exec only returns on failure.
	return fmt.Errorf("exec %s: %w", pl.Path, err)
}
