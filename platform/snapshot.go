// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import "sync"

// Snapshot holds the host facts the precision query consults. It is
// computed once per process lifetime and never mutated afterwards;
// treat it as a read-only value.
type Snapshot struct {
	// OS is the runtime operating system (runtime.GOOS).
	OS string

	// KernelRelease is the kernel release string from uname, or
	// empty where the probe is unavailable.
	KernelRelease string

	// LandlockABI is the Landlock ABI level the kernel supports.
	// Zero means no usable Landlock (non-Linux hosts, kernels
	// without the LSM, or the syscall disabled). Only meaningful
	// on Linux.
	LandlockABI int
}

var (
	hostOnce sync.Once
	hostSnap Snapshot
)

// Host returns the process-wide host snapshot, probing it on first
// use. The probe is cheap and idempotent; every later call returns
// the same value.
func Host() Snapshot {
	hostOnce.Do(func() {
		hostSnap = probeHost()
	})
	return hostSnap
}
