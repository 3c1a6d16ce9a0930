// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import "testing"

func TestOperationValueSemantics(t *testing.T) {
	a := FileReadAll{Path: Subpath("/tmp")}
	b := FileReadAll{Path: Subpath("/tmp")}
	if a != b {
		t.Error("identical operations compare unequal")
	}

	var op Operation = a
	copied := op
	if copied != op {
		t.Error("copied operation compares unequal to original")
	}

	if a == (FileReadAll{Path: Literal("/tmp")}) {
		t.Error("literal and subpath patterns compare equal")
	}
}

func TestOperationStrings(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{FileReadAll{Path: Subpath("/usr")}, "file-read(subpath:/usr)"},
		{FileReadMetadata{Path: Literal("/etc/hosts")}, "file-read-metadata(literal:/etc/hosts)"},
		{NetworkOutbound{Address: AllAddresses()}, "network-outbound(all)"},
		{NetworkOutbound{Address: TCPPort(443)}, "network-outbound(tcp:443)"},
		{NetworkOutbound{Address: LocalSocket("/run/x.sock")}, "network-outbound(local-socket:/run/x.sock)"},
		{SystemInfoRead{}, "system-info-read"},
		{PlatformSpecific{}, "platform-specific(nil)"},
	}
	for _, test := range tests {
		if got := test.op.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestSupportLevelRoundTrip(t *testing.T) {
	levels := []SupportLevel{
		NeverAllowed, CanBeAllowed, CannotBeAllowedPrecisely, AlwaysAllowed,
	}
	for _, level := range levels {
		parsed, err := ParseSupportLevel(level.String())
		if err != nil {
			t.Fatalf("ParseSupportLevel(%q): %v", level.String(), err)
		}
		if parsed != level {
			t.Errorf("round trip of %v yielded %v", level, parsed)
		}
	}

	if _, err := ParseSupportLevel("bogus"); err == nil {
		t.Error("ParseSupportLevel accepted an unknown name")
	}
}

func TestSupportLevelGrantable(t *testing.T) {
	if !NeverAllowed.Grantable() || !CanBeAllowed.Grantable() {
		t.Error("exact levels must be grantable")
	}
	if CannotBeAllowedPrecisely.Grantable() || AlwaysAllowed.Grantable() {
		t.Error("imprecise levels must not be grantable")
	}
}
