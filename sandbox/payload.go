// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sandbox

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/bureau-foundation/palisade/capability"
	"github.com/bureau-foundation/palisade/lib/binhash"
	"github.com/bureau-foundation/palisade/lib/codec"
	"github.com/bureau-foundation/palisade/profiledef"
)

// PayloadEnv is the environment variable carrying the trampoline
// payload. Its presence is what distinguishes a trampoline child
// from a normal invocation of the binary.
const PayloadEnv = "PALISADE_SANDBOX_PAYLOAD"

// Entered reports whether this process was started as a sandbox
// trampoline child. Binaries embedding the trampoline must call
// [ChildMain] before any other dispatch when this returns true.
func Entered() bool {
	return os.Getenv(PayloadEnv) != ""
}

// payload crosses the trampoline boundary: everything the child
// needs to re-validate, verify, activate, and exec. Operations
// travel in their declarative form, so the child rebuilds and
// re-validates them from scratch rather than trusting the parent.
type payload struct {
	Operations []profiledef.OperationDef `cbor:"operations"`
	Path       string                    `cbor:"path"`
	Args       []string                  `cbor:"args,omitempty"`
	Env        []string                  `cbor:"env,omitempty"`
	Digest     string                    `cbor:"digest"`
}

func encodePayload(p payload) (string, error) {
	raw, err := codec.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding sandbox payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func decodePayload(encoded string) (payload, error) {
	var p payload
	if encoded == "" {
		return p, fmt.Errorf("missing %s", PayloadEnv)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return p, fmt.Errorf("decoding sandbox payload: %w", err)
	}
	if err := codec.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decoding sandbox payload: %w", err)
	}
	if p.Path == "" {
		return p, fmt.Errorf("sandbox payload has no target path")
	}
	return p, nil
}

// compileOperations rebuilds the capability operations from their
// declarative form.
func (p payload) compileOperations() ([]capability.Operation, error) {
	ops := make([]capability.Operation, 0, len(p.Operations))
	for i, def := range p.Operations {
		op, err := def.Compile()
		if err != nil {
			return nil, fmt.Errorf("sandbox payload operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// verifyTarget recomputes the target executable's digest and
// compares it to the one recorded at spawn time. A mismatch means
// the binary changed between validation and exec; running it under
// the old profile would confine the wrong program.
func (p payload) verifyTarget() error {
	want, err := binhash.Parse(p.Digest)
	if err != nil {
		return fmt.Errorf("sandbox payload digest: %w", err)
	}
	got, err := binhash.HashFile(p.Path)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("target %s changed since spawn: digest %s, expected %s", p.Path, got, want)
	}
	return nil
}
