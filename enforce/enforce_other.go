// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package enforce

import (
	"fmt"
	"runtime"

	"github.com/bureau-foundation/palisade/platform"
)

// New fails on non-Linux builds: no backend exists here, and
// pretending otherwise would void the isolation guarantee.
func New() (platform.Activator, error) {
	return nil, fmt.Errorf("no enforcement backend for %s", runtime.GOOS)
}
