// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux && !darwin

package platform

import (
	"github.com/bureau-foundation/palisade/capability"
)

// hostSupport covers platforms with no confinement mechanism: no
// operation can be blocked, so every operation is AlwaysAllowed and
// profile construction fails. Fail-closed by construction.
func hostSupport(_ capability.Operation, _ Snapshot) capability.SupportLevel {
	return capability.AlwaysAllowed
}
