// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile turns a list of capability operations into a
// validated, immutable allow-list. [New] is the single validation
// gate: it accepts a list only when the running platform can grant
// every operation exactly, and returns a typed error otherwise.
// There is no way to obtain a Profile that skipped validation.
//
// A validated profile is committed to the calling process through
// [Profile.Activate] with a platform.Activator backend. Activation
// is irreversible; see the platform package for the full contract.
package profile
