// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package enforce

import (
	"testing"

	"github.com/bureau-foundation/palisade/platform"
)

func TestNewRequiresLandlock(t *testing.T) {
	host := platform.Host()
	backend, err := New()
	if host.LandlockABI < 1 {
		if err == nil {
			t.Fatalf("New() succeeded without a landlock ABI (kernel %s)", host.KernelRelease)
		}
		return
	}
	if err != nil {
		t.Fatalf("New() on landlock ABI v%d: %v", host.LandlockABI, err)
	}
	if backend == nil {
		t.Fatal("New() returned a nil backend")
	}
}

// Activation itself is exercised end to end through the sandbox
// trampoline (it irreversibly confines the calling process, so it
// cannot run inside the test binary). The config mapping is the
// testable pure part.
func TestLandlockConfigCoversProbedABIs(t *testing.T) {
	for abi := 1; abi <= 7; abi++ {
		if _, err := landlockConfig(abi); err != nil {
			t.Errorf("landlockConfig(%d): %v", abi, err)
		}
	}
	if _, err := landlockConfig(0); err == nil {
		t.Error("landlockConfig(0) should fail")
	}

	// Future ABIs pin to the newest config this build knows.
	if _, err := landlockConfig(9); err != nil {
		t.Errorf("landlockConfig(9): %v", err)
	}
}
