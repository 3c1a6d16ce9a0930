// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides BLAKE3 content hashing for executable
// files.
//
// The sandbox trampoline records a digest of the target executable
// in its payload and re-verifies the file before replacing its own
// image with it, so that a binary swapped between profile validation
// and exec is detected rather than run confined under a profile
// written for something else.
//
// Digests use BLAKE3 keyed mode with a fixed domain-separation key,
// so executable digests can never collide with hashes computed in
// other contexts over the same bytes.
package binhash
