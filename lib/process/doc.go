// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for Palisade
// commands: fatal error reporting to stderr for errors from run()
// where the structured logger may not be initialized yet. The
// library packages never print or exit; raw stderr output belongs
// here and in command usage text only.
package process
