// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "binary")
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestHashFileStable(t *testing.T) {
	path := writeFixture(t, []byte("#!/bin/sh\nexit 0\n"))

	first, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	second, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if first != second {
		t.Error("same file hashed to different digests")
	}
	if first == (Hash{}) {
		t.Error("digest is the zero value")
	}
}

func TestHashFileDetectsChange(t *testing.T) {
	path := writeFixture(t, []byte("original"))
	before, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}

	if err := os.WriteFile(path, []byte("swapped!"), 0o755); err != nil {
		t.Fatalf("rewriting fixture: %v", err)
	}
	after, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if before == after {
		t.Error("changed file hashed to the same digest")
	}
}

func TestHashFileMissing(t *testing.T) {
	if _, err := HashFile("/nonexistent/binary"); err == nil {
		t.Error("HashFile accepted a missing file")
	}
}

func TestDigestRoundTrip(t *testing.T) {
	path := writeFixture(t, []byte("content"))
	digest, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}

	encoded := digest.String()
	if len(encoded) != 64 {
		t.Fatalf("encoded digest is %d chars, want 64", len(encoded))
	}

	parsed, err := Parse(encoded)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed != digest {
		t.Error("digest round trip changed value")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "zz", "ab12", "not hex at all"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}
