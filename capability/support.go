// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import "fmt"

// SupportLevel rates how precisely the running platform can grant an
// operation. Profiles accept only operations at [NeverAllowed] or
// [CanBeAllowed]; the other two levels make profile construction
// fail, deliberately, so that a profile never silently grants more
// (or less) than it says.
type SupportLevel uint8

const (
	// NeverAllowed means the platform can always block the
	// operation. Listing it in a profile is safe: the grant is
	// exact (it grants nothing extra).
	NeverAllowed SupportLevel = iota

	// CanBeAllowed means the platform can grant exactly this
	// operation and nothing more.
	CanBeAllowed

	// CannotBeAllowedPrecisely means granting the operation would
	// also grant a strictly larger set. For example, a platform may
	// be unable to allow one TCP port without allowing network
	// access entirely. Unsafe to include silently.
	CannotBeAllowedPrecisely

	// AlwaysAllowed means the platform cannot block the operation
	// at all. Listing it would be misleading: the profile would
	// appear to restrict something it does not.
	AlwaysAllowed
)

// String returns the canonical level name.
func (l SupportLevel) String() string {
	switch l {
	case NeverAllowed:
		return "never-allowed"
	case CanBeAllowed:
		return "can-be-allowed"
	case CannotBeAllowedPrecisely:
		return "cannot-be-allowed-precisely"
	case AlwaysAllowed:
		return "always-allowed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(l))
	}
}

// ParseSupportLevel parses a canonical level name as produced by
// [SupportLevel.String].
func ParseSupportLevel(name string) (SupportLevel, error) {
	switch name {
	case "never-allowed":
		return NeverAllowed, nil
	case "can-be-allowed":
		return CanBeAllowed, nil
	case "cannot-be-allowed-precisely":
		return CannotBeAllowedPrecisely, nil
	case "always-allowed":
		return AlwaysAllowed, nil
	default:
		return 0, fmt.Errorf("unknown support level: %q", name)
	}
}

// Grantable reports whether an operation at this level may appear in
// a profile.
func (l SupportLevel) Grantable() bool {
	return l == NeverAllowed || l == CanBeAllowed
}
