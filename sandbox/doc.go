// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sandbox runs a command confined under a validated profile
// by splitting the work across a re-exec trampoline.
//
// Activation must happen inside the process to be confined, after it
// exists but before the target program runs. The parent ([Start])
// therefore spawns the current executable again with the three-pipe
// stdio contract of the spawn package, carrying a CBOR payload (the
// profile's operations, the target command, and a digest of the
// target executable) through one environment variable. The child
// ([ChildMain], dispatched from main when the variable is present)
// decodes the payload, re-validates the operations through
// profile.New, verifies the executable digest, activates the
// enforcement backend, and only then replaces itself with the
// target.
//
// Any child-side failure writes a diagnostic to stderr and exits
// immediately; a half-confined child never continues into target or
// parent logic.
package sandbox
