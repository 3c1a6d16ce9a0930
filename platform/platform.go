// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"github.com/bureau-foundation/palisade/capability"
)

// Activator is the contract a per-platform enforcement backend
// satisfies. Activate commits the given operations as the complete
// allow-list for the calling process and all of its descendants, for
// the remainder of their lifetimes.
//
// Contract (binding on implementations and callers alike):
//
//   - Activate must be called from inside the process to be
//     confined, never from a supervisor observing another process.
//   - It must run before any operation not in the list is attempted,
//     as the last security-relevant action before untrusted logic.
//   - Activation is irreversible. There is no deactivate; the
//     restriction set can only shrink from here on.
//   - A non-nil error is fatal to the isolation guarantee. Callers
//     must not continue as if confined.
type Activator interface {
	Activate(ops []capability.Operation) error
}

// Support reports how precisely op can be granted on the running
// platform. It is total over every operation variant (the
// platform-specific escape hatch answers for itself) and
// deterministic for a fixed host: it performs no I/O beyond the
// one-time host snapshot probe.
func Support(op capability.Operation) capability.SupportLevel {
	if ps, ok := op.(capability.PlatformSpecific); ok {
		if ps.Op == nil {
			// An empty escape hatch grants nothing and can
			// always be blocked.
			return capability.NeverAllowed
		}
		return ps.Op.Support()
	}
	return hostSupport(op, Host())
}
