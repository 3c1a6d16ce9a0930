// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package capability defines the value types that describe what a
// confined process may do: the [Operation] variants, the path and
// address patterns they target, and the [SupportLevel] scale that
// rates how precisely the running platform can grant each operation.
//
// Everything in this package is pure data. Operations are immutable
// once constructed, copy freely, and compare with ==. Evaluating an
// operation against the running platform lives in the platform
// package; enforcing it lives behind the platform.Activator contract.
package capability
