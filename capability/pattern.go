// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import "fmt"

// PathScope selects whether a [PathPattern] matches one path or a
// whole subtree.
type PathScope uint8

const (
	// PathLiteral matches exactly one path.
	PathLiteral PathScope = iota

	// PathSubpath matches a directory and everything recursively
	// beneath it.
	PathSubpath
)

// String returns the canonical scope name used in profile documents.
func (s PathScope) String() string {
	switch s {
	case PathLiteral:
		return "literal"
	case PathSubpath:
		return "subpath"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// PathPattern describes a path or set of paths on the filesystem.
//
// Within one profile, no two patterns' matched path-sets may overlap:
// confinement behavior is undefined otherwise. The core cannot check
// this without a full enforcement backend, so non-overlap is a caller
// obligation. For example, do not allow metadata reads of the subtree
// rooted at /dev while allowing full reads of /dev/null; allow full
// reads of /dev, or tighten the profile.
type PathPattern struct {
	Path  string
	Scope PathScope
}

// Literal returns a pattern matching exactly path.
func Literal(path string) PathPattern {
	return PathPattern{Path: path, Scope: PathLiteral}
}

// Subpath returns a pattern matching path and all of its contents,
// recursively.
func Subpath(path string) PathPattern {
	return PathPattern{Path: path, Scope: PathSubpath}
}

func (p PathPattern) String() string {
	return fmt.Sprintf("%s:%s", p.Scope, p.Path)
}

// AddressKind selects the shape of an [AddressPattern].
type AddressKind uint8

const (
	// AddressAll matches all network addresses.
	AddressAll AddressKind = iota

	// AddressTCP matches TCP connections to one port, on any host.
	AddressTCP

	// AddressLocalSocket matches a local socket addressed by
	// filesystem path (for example, a Unix domain socket).
	AddressLocalSocket
)

// String returns the canonical kind name used in profile documents.
func (k AddressKind) String() string {
	switch k {
	case AddressAll:
		return "all"
	case AddressTCP:
		return "tcp"
	case AddressLocalSocket:
		return "local-socket"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// AddressPattern describes a network address or set of addresses.
// Port is meaningful only when Kind is [AddressTCP]; Path only when
// Kind is [AddressLocalSocket].
type AddressPattern struct {
	Kind AddressKind
	Port uint16
	Path string
}

// AllAddresses returns a pattern matching every network address.
func AllAddresses() AddressPattern {
	return AddressPattern{Kind: AddressAll}
}

// TCPPort returns a pattern matching TCP connections to port.
func TCPPort(port uint16) AddressPattern {
	return AddressPattern{Kind: AddressTCP, Port: port}
}

// LocalSocket returns a pattern matching the local socket at path.
func LocalSocket(path string) AddressPattern {
	return AddressPattern{Kind: AddressLocalSocket, Path: path}
}

func (a AddressPattern) String() string {
	switch a.Kind {
	case AddressAll:
		return "all"
	case AddressTCP:
		return fmt.Sprintf("tcp:%d", a.Port)
	case AddressLocalSocket:
		return "local-socket:" + a.Path
	default:
		return a.Kind.String()
	}
}
