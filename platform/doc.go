// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package platform answers one question about the machine this
// process runs on: how precisely can each capability operation be
// granted here? The answer ([Support]) is total over every operation
// variant and deterministic for a fixed host; profile construction
// is built entirely on it.
//
// The package also defines [Activator], the narrow contract every
// per-platform enforcement backend implements. The core never
// imports a backend; callers select one at build or configuration
// time and pass it in.
//
// Host facts that the query depends on (kernel release, Landlock ABI
// level) are captured once per process into an immutable [Snapshot].
package platform
