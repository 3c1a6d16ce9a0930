// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package profiledef

import (
	"fmt"

	"github.com/bureau-foundation/palisade/capability"
)

// Document is one parsed profile document: a set of named profiles.
type Document struct {
	Profiles map[string]*ProfileDef `yaml:"profiles" json:"profiles"`
}

// ProfileDef is the declarative form of one named profile.
type ProfileDef struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Inherit names a profile whose operations precede this one's.
	// Single inheritance; cycles are a resolution error.
	Inherit string `yaml:"inherit,omitempty" json:"inherit,omitempty"`

	Operations []OperationDef `yaml:"operations" json:"operations"`
}

// OperationDef is the declarative form of one capability operation.
// Op selects the variant; the remaining fields apply per variant:
//
//	file-read, file-read-metadata:  path, scope (literal|subpath, default literal)
//	network-outbound:               address (all|tcp|local-socket), port, socket
//	system-info-read:               no fields
//
// The platform-specific escape hatch has no declarative form:
// documents can only express operations the core models.
type OperationDef struct {
	Op      string `yaml:"op" json:"op"`
	Path    string `yaml:"path,omitempty" json:"path,omitempty"`
	Scope   string `yaml:"scope,omitempty" json:"scope,omitempty"`
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
	Port    uint16 `yaml:"port,omitempty" json:"port,omitempty"`
	Socket  string `yaml:"socket,omitempty" json:"socket,omitempty"`
}

// Compile converts the definition into a capability operation,
// rejecting unknown variants and malformed field combinations.
func (d OperationDef) Compile() (capability.Operation, error) {
	switch d.Op {
	case "file-read", "file-read-metadata":
		pattern, err := d.pathPattern()
		if err != nil {
			return nil, err
		}
		if d.Op == "file-read" {
			return capability.FileReadAll{Path: pattern}, nil
		}
		return capability.FileReadMetadata{Path: pattern}, nil

	case "network-outbound":
		address, err := d.addressPattern()
		if err != nil {
			return nil, err
		}
		return capability.NetworkOutbound{Address: address}, nil

	case "system-info-read":
		if d.Path != "" || d.Address != "" || d.Port != 0 || d.Socket != "" {
			return nil, fmt.Errorf("system-info-read takes no fields")
		}
		return capability.SystemInfoRead{}, nil

	case "":
		return nil, fmt.Errorf("operation is missing the op field")
	default:
		return nil, fmt.Errorf("unknown operation %q", d.Op)
	}
}

func (d OperationDef) pathPattern() (capability.PathPattern, error) {
	if d.Path == "" {
		return capability.PathPattern{}, fmt.Errorf("%s requires a path", d.Op)
	}
	if d.Address != "" || d.Port != 0 || d.Socket != "" {
		return capability.PathPattern{}, fmt.Errorf("%s takes only path and scope", d.Op)
	}
	switch d.Scope {
	case "", "literal":
		return capability.Literal(d.Path), nil
	case "subpath":
		return capability.Subpath(d.Path), nil
	default:
		return capability.PathPattern{}, fmt.Errorf("unknown path scope %q", d.Scope)
	}
}

func (d OperationDef) addressPattern() (capability.AddressPattern, error) {
	if d.Path != "" || d.Scope != "" {
		return capability.AddressPattern{}, fmt.Errorf("network-outbound takes only address, port, and socket")
	}
	switch d.Address {
	case "all":
		if d.Port != 0 || d.Socket != "" {
			return capability.AddressPattern{}, fmt.Errorf("address \"all\" takes no port or socket")
		}
		return capability.AllAddresses(), nil
	case "tcp":
		if d.Port == 0 {
			return capability.AddressPattern{}, fmt.Errorf("address \"tcp\" requires a port")
		}
		if d.Socket != "" {
			return capability.AddressPattern{}, fmt.Errorf("address \"tcp\" takes no socket")
		}
		return capability.TCPPort(d.Port), nil
	case "local-socket":
		if d.Socket == "" {
			return capability.AddressPattern{}, fmt.Errorf("address \"local-socket\" requires a socket path")
		}
		if d.Port != 0 {
			return capability.AddressPattern{}, fmt.Errorf("address \"local-socket\" takes no port")
		}
		return capability.LocalSocket(d.Socket), nil
	case "":
		return capability.AddressPattern{}, fmt.Errorf("network-outbound requires an address")
	default:
		return capability.AddressPattern{}, fmt.Errorf("unknown address kind %q", d.Address)
	}
}

// Encode converts operations back into their declarative form, for
// serialization across the trampoline boundary. PlatformSpecific
// operations have no declarative form and are rejected.
func Encode(ops []capability.Operation) ([]OperationDef, error) {
	defs := make([]OperationDef, 0, len(ops))
	for i, op := range ops {
		def, err := encodeOne(op)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func encodeOne(op capability.Operation) (OperationDef, error) {
	switch op := op.(type) {
	case capability.FileReadAll:
		return OperationDef{Op: "file-read", Path: op.Path.Path, Scope: op.Path.Scope.String()}, nil
	case capability.FileReadMetadata:
		return OperationDef{Op: "file-read-metadata", Path: op.Path.Path, Scope: op.Path.Scope.String()}, nil
	case capability.NetworkOutbound:
		switch op.Address.Kind {
		case capability.AddressAll:
			return OperationDef{Op: "network-outbound", Address: "all"}, nil
		case capability.AddressTCP:
			return OperationDef{Op: "network-outbound", Address: "tcp", Port: op.Address.Port}, nil
		case capability.AddressLocalSocket:
			return OperationDef{Op: "network-outbound", Address: "local-socket", Socket: op.Address.Path}, nil
		default:
			return OperationDef{}, fmt.Errorf("unknown address kind in %s", op)
		}
	case capability.SystemInfoRead:
		return OperationDef{Op: "system-info-read"}, nil
	case capability.PlatformSpecific:
		return OperationDef{}, fmt.Errorf("platform-specific operation %s has no declarative form", op)
	default:
		return OperationDef{}, fmt.Errorf("unknown operation type %T", op)
	}
}
