// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 keyed digest of an executable's contents.
type Hash [32]byte

// executableKey is the 32-byte key for BLAKE3 keyed hashing of
// executable files. The value is the ASCII domain name zero-padded
// to 32 bytes: readable in hex dumps, opaque to the hash. Changing
// it invalidates every recorded digest.
var executableKey = [32]byte{
	'p', 'a', 'l', 'i', 's', 'a', 'd', 'e', '.',
	'e', 'x', 'e', 'c', 'u', 't', 'a', 'b', 'l', 'e',
}

// HashFile computes the executable-domain digest of the file at
// path. The file is streamed through the hash in chunks (io.Copy),
// keeping memory constant regardless of file size.
func HashFile(path string) (Hash, error) {
	file, err := os.Open(path)
	if err != nil {
		return Hash{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher, err := blake3.NewKeyed(executableKey[:])
	if err != nil {
		return Hash{}, fmt.Errorf("initializing keyed hasher: %w", err)
	}
	if _, err := io.Copy(hasher, file); err != nil {
		return Hash{}, fmt.Errorf("hashing %s: %w", path, err)
	}

	var digest Hash
	hasher.Sum(digest[:0])
	return digest, nil
}

// String returns the canonical hex encoding of the digest.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Parse parses a hex-encoded digest string as produced by
// [Hash.String], validating length and encoding.
func Parse(hexString string) (Hash, error) {
	var digest Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
