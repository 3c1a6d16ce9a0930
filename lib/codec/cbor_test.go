// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

type samplePayload struct {
	Path   string   `cbor:"path"`
	Args   []string `cbor:"args,omitempty"`
	Digest string   `cbor:"digest"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	original := samplePayload{
		Path:   "/usr/bin/true",
		Args:   []string{"--quiet"},
		Digest: "ab12",
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded samplePayload
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Path != original.Path || decoded.Digest != original.Digest {
		t.Errorf("round trip changed payload: %+v", decoded)
	}
	if len(decoded.Args) != 1 || decoded.Args[0] != "--quiet" {
		t.Errorf("round trip changed args: %v", decoded.Args)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	payload := map[string]any{"b": 2, "a": 1, "c": []string{"x"}}

	first, err := Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Marshal(payload)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("identical payload encoded to different bytes")
		}
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	extended := map[string]any{
		"path":   "/bin/true",
		"digest": "00",
		"added_in_future_version": true,
	}
	data, err := Marshal(extended)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded samplePayload
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal with unknown field: %v", err)
	}
	if decoded.Path != "/bin/true" {
		t.Errorf("Path = %q, want /bin/true", decoded.Path)
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(samplePayload{Path: "/bin/sh"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded samplePayload
	if err := NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Path != "/bin/sh" {
		t.Errorf("Path = %q, want /bin/sh", decoded.Path)
	}
}
