// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package platform

import (
	"testing"

	"github.com/bureau-foundation/palisade/capability"
)

func TestLinuxSupportTable(t *testing.T) {
	withLandlock := Snapshot{OS: "linux", LandlockABI: 3}
	withoutLandlock := Snapshot{OS: "linux"}

	tests := []struct {
		name string
		op   capability.Operation
		host Snapshot
		want capability.SupportLevel
	}{
		{
			name: "file read with landlock",
			op:   capability.FileReadAll{Path: capability.Subpath("/usr")},
			host: withLandlock,
			want: capability.CanBeAllowed,
		},
		{
			name: "file read without landlock",
			op:   capability.FileReadAll{Path: capability.Subpath("/usr")},
			host: withoutLandlock,
			want: capability.CannotBeAllowedPrecisely,
		},
		{
			name: "metadata read is coarser than landlock can express",
			op:   capability.FileReadMetadata{Path: capability.Literal("/etc/hosts")},
			host: withLandlock,
			want: capability.CannotBeAllowedPrecisely,
		},
		{
			name: "all-addresses network",
			op:   capability.NetworkOutbound{Address: capability.AllAddresses()},
			host: withLandlock,
			want: capability.CanBeAllowed,
		},
		{
			name: "single tcp port",
			op:   capability.NetworkOutbound{Address: capability.TCPPort(443)},
			host: withLandlock,
			want: capability.CannotBeAllowedPrecisely,
		},
		{
			name: "local socket",
			op:   capability.NetworkOutbound{Address: capability.LocalSocket("/run/x.sock")},
			host: withLandlock,
			want: capability.CannotBeAllowedPrecisely,
		},
		{
			name: "system info read",
			op:   capability.SystemInfoRead{},
			host: withLandlock,
			want: capability.CannotBeAllowedPrecisely,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := hostSupport(test.op, test.host); got != test.want {
				t.Errorf("hostSupport(%v) = %v, want %v", test.op, got, test.want)
			}
		})
	}
}
