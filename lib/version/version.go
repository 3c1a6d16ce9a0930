// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build version of Palisade binaries.
package version

import (
	"fmt"
	"runtime"
)

// Version is the release version, overridden at build time via
// -ldflags "-X github.com/bureau-foundation/palisade/lib/version.Version=...".
var Version = "dev"

// Info returns the version string with the Go runtime and platform.
func Info() string {
	return fmt.Sprintf("%s (%s, %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Print writes the standard "--version" line for the named binary.
func Print(name string) {
	fmt.Printf("%s %s\n", name, Info())
}
