// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package sandbox

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/palisade/lib/binhash"
	"github.com/bureau-foundation/palisade/profile"
	"github.com/bureau-foundation/palisade/profiledef"
	"github.com/bureau-foundation/palisade/spawn"
)

// Start spawns cmd confined under prof, using the current executable
// as the trampoline. The returned process is supervised exactly like
// a plain spawn.Start child: three private pipes and a pid-scoped
// wait.
//
// The profile must contain only operations with a declarative form;
// platform-specific operations cannot cross the trampoline boundary
// and make Start fail before any process is created.
func Start(prof *profile.Profile, cmd *spawn.Command) (*spawn.Process, error) {
	trampoline, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving trampoline executable: %w", err)
	}
	return start(prof, cmd, trampoline)
}

func start(prof *profile.Profile, cmd *spawn.Command, trampoline string) (*spawn.Process, error) {
	defs, err := profiledef.Encode(prof.AllowedOperations())
	if err != nil {
		return nil, err
	}

	// Validate and encode the target environment here, in the
	// parent, so a bad entry fails before a child exists.
	env := make([]string, 0, len(cmd.Env))
	for _, entry := range cmd.Env {
		encoded, err := entry.Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding environment: %w", err)
		}
		env = append(env, encoded)
	}

	digest, err := binhash.HashFile(cmd.Path)
	if err != nil {
		return nil, fmt.Errorf("hashing target executable: %w", err)
	}

	encoded, err := encodePayload(payload{
		Operations: defs,
		Path:       cmd.Path,
		Args:       cmd.Args,
		Env:        env,
		Digest:     digest.String(),
	})
	if err != nil {
		return nil, err
	}

	child := spawn.NewCommand(trampoline)
	child.AddEnv(PayloadEnv, encoded)
	return spawn.Start(child)
}
