// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package platform

import "runtime"

func probeHost() Snapshot {
	return Snapshot{OS: runtime.GOOS}
}
