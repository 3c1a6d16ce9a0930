// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"fmt"

	"github.com/bureau-foundation/palisade/capability"
	"github.com/bureau-foundation/palisade/platform"
)

// Profile is a validated, immutable allow-list of operations for a
// confined process. Operations not in the list are implicitly
// denied. A Profile is safe for concurrent reads and may be shared
// across the spawn boundary.
type Profile struct {
	ops []capability.Operation
}

// ValidationError reports the first operation in the requested list
// that the running platform cannot grant exactly. Callers that want
// to relax the request should inspect each operation's level with
// platform.Support and revise the list; no partial profile exists.
type ValidationError struct {
	// Index is the operation's position in the requested list.
	Index int

	// Op is the offending operation.
	Op capability.Operation

	// Level is the operation's support level on this platform,
	// always CannotBeAllowedPrecisely or AlwaysAllowed.
	Level capability.SupportLevel
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("operation %d (%s) cannot be granted exactly on this platform: %s",
		e.Index, e.Op, e.Level)
}

// New validates ops against the running platform and returns a
// profile containing them, in the caller's order.
//
// Validation is all-or-nothing and deliberately strict: every
// operation must be at support level NeverAllowed or CanBeAllowed.
// An operation at CannotBeAllowedPrecisely would silently grant a
// strictly larger set; one at AlwaysAllowed would claim to restrict
// something the platform never blocks. Either makes the whole
// construction fail.
//
// Order has no semantic effect (patterns must not overlap, see
// capability.PathPattern) but is preserved for deterministic
// inspection.
func New(ops []capability.Operation) (*Profile, error) {
	for i, op := range ops {
		if level := platform.Support(op); !level.Grantable() {
			return nil, &ValidationError{Index: i, Op: op, Level: level}
		}
	}
	owned := make([]capability.Operation, len(ops))
	copy(owned, ops)
	return &Profile{ops: owned}, nil
}

// AllowedOperations returns the profile's operations in construction
// order. The returned slice is a copy; mutating it does not affect
// the profile.
func (p *Profile) AllowedOperations() []capability.Operation {
	ops := make([]capability.Operation, len(p.ops))
	copy(ops, p.ops)
	return ops
}

// Activate commits the profile's restrictions to the calling process
// and all of its descendants through the given backend. See
// platform.Activator for the ordering and irreversibility contract;
// in particular, a non-nil error is fatal to the isolation guarantee
// and the caller must not continue as if confined.
func (p *Profile) Activate(backend platform.Activator) error {
	if err := backend.Activate(p.AllowedOperations()); err != nil {
		return fmt.Errorf("activating profile: %w", err)
	}
	return nil
}
