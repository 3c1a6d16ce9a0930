// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec centralizes Palisade's CBOR configuration. The
// sandbox trampoline carries its payload (operations, target
// command, executable digest) through an environment variable; a
// single deterministic encoder configuration keeps those bytes
// stable for a given payload, so comparisons never depend on encoder
// settings scattered across callers.
package codec
