// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package platform

import (
	"runtime"

	landlocksys "github.com/landlock-lsm/go-landlock/landlock/syscall"
	"golang.org/x/sys/unix"
)

// probeHost queries the kernel once for the facts the Linux support
// table depends on. Failures degrade to the zero value for the
// affected field: no Landlock ABI means path operations report
// CannotBeAllowedPrecisely, which keeps validation fail-closed.
func probeHost() Snapshot {
	snap := Snapshot{OS: runtime.GOOS}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		snap.KernelRelease = unix.ByteSliceToString(uts.Release[:])
	}

	if abi, err := landlocksys.LandlockGetABIVersion(); err == nil && abi > 0 {
		snap.LandlockABI = abi
	}

	return snap
}
