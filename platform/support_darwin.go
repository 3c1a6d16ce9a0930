// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package platform

import (
	"github.com/bureau-foundation/palisade/capability"
)

// hostSupport is the macOS support table. The Seatbelt profile
// language expresses every core operation shape exactly: file-read*
// and file-read-metadata filters, network-outbound with port and
// local-socket filters, and sysctl-read.
func hostSupport(op capability.Operation, _ Snapshot) capability.SupportLevel {
	switch op.(type) {
	case capability.FileReadAll,
		capability.FileReadMetadata,
		capability.NetworkOutbound,
		capability.SystemInfoRead:
		return capability.CanBeAllowed
	default:
		return capability.CannotBeAllowedPrecisely
	}
}
