// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package capture persists a child process's output streams as
// zstd-compressed files. Child output is mostly text (build logs,
// test output, listings), where zstd's ratio pays for its CPU cost
// many times over; a capture [Writer] is teed next to the live
// stream so capturing never delays or reorders what the caller sees.
package capture
