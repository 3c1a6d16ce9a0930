// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import "fmt"

// Operation is one capability a confined process may be granted.
// Anything not granted is implicitly denied. The closed set of
// variants is [FileReadAll], [FileReadMetadata], [NetworkOutbound],
// [SystemInfoRead], and [PlatformSpecific].
//
// Operations are plain values: comparable, freely copyable, and
// safe to share read-only across goroutines and the spawn boundary.
type Operation interface {
	fmt.Stringer

	// operation seals the interface to this package's variants so
	// that support queries can be total over them.
	operation()
}

// FileReadAll grants every file-related read operation (open, read,
// readdir, stat, readlink) on the files matched by Path.
type FileReadAll struct {
	Path PathPattern
}

// FileReadMetadata grants metadata-only reads (stat, readlink) on
// the files matched by Path, without granting access to their
// contents.
type FileReadMetadata struct {
	Path PathPattern
}

// NetworkOutbound grants initiating outbound network connections to
// the addresses matched by Address.
type NetworkOutbound struct {
	Address AddressPattern
}

// SystemInfoRead grants reading system information (sysctl and
// equivalents).
type SystemInfoRead struct{}

// PlatformSpecific wraps an operation the core does not model. The
// payload reports its own support level, keeping the platform
// precision query total over every variant.
type PlatformSpecific struct {
	Op PlatformOperation
}

// PlatformOperation is the escape hatch for operations only one
// platform backend understands. Implementations must be immutable
// values and must answer Support deterministically for a fixed
// platform.
type PlatformOperation interface {
	fmt.Stringer

	// Support reports how precisely this operation can be granted
	// on the running platform.
	Support() SupportLevel
}

func (FileReadAll) operation()      {}
func (FileReadMetadata) operation() {}
func (NetworkOutbound) operation()  {}
func (SystemInfoRead) operation()   {}
func (PlatformSpecific) operation() {}

func (o FileReadAll) String() string {
	return fmt.Sprintf("file-read(%s)", o.Path)
}

func (o FileReadMetadata) String() string {
	return fmt.Sprintf("file-read-metadata(%s)", o.Path)
}

func (o NetworkOutbound) String() string {
	return fmt.Sprintf("network-outbound(%s)", o.Address)
}

func (SystemInfoRead) String() string {
	return "system-info-read"
}

func (o PlatformSpecific) String() string {
	if o.Op == nil {
		return "platform-specific(nil)"
	}
	return fmt.Sprintf("platform-specific(%s)", o.Op)
}
