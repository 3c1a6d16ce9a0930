// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package platform

import (
	"github.com/bureau-foundation/palisade/capability"
)

// hostSupport is the Linux support table. Path reads are exact only
// when the kernel offers a usable Landlock ABI; network gating is
// done at the socket-syscall level, which cannot dereference a
// sockaddr, so only the all-addresses pattern is exact.
func hostSupport(op capability.Operation, host Snapshot) capability.SupportLevel {
	switch op := op.(type) {
	case capability.FileReadAll:
		if host.LandlockABI > 0 {
			return capability.CanBeAllowed
		}
		return capability.CannotBeAllowedPrecisely
	case capability.FileReadMetadata:
		// Landlock has no stat-without-read access right: granting
		// metadata means granting content too.
		return capability.CannotBeAllowedPrecisely
	case capability.NetworkOutbound:
		if op.Address.Kind == capability.AddressAll {
			return capability.CanBeAllowed
		}
		return capability.CannotBeAllowedPrecisely
	case capability.SystemInfoRead:
		// /proc/sys visibility is all-or-nothing without a private
		// mount namespace, which this core does not create.
		return capability.CannotBeAllowedPrecisely
	default:
		// Unreachable: PlatformSpecific is handled by Support and
		// the variant set is sealed. Fail closed regardless.
		return capability.CannotBeAllowedPrecisely
	}
}
