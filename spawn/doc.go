// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package spawn is the process lifecycle manager: it starts a child
// process described by a [Command] with three private pipes wired to
// the child's standard input, output, and error, tracks the child's
// pid, and reaps it exactly once into a typed [ExitStatus].
//
// The pipe rewiring happens in the child before the program image is
// replaced, and replacement happens before any target code runs, so
// the substitution is always observable correctly from the child's
// side. If replacement itself fails, the child terminates
// unconditionally; it never falls through into parent logic. On the
// parent side, a failed [Start] never returns a partial [Process]
// and unwinds every pipe it created.
//
// Waiting is scoped to the tracked pid, so concurrent supervisors in
// one parent never consume each other's termination notifications.
// There is no timeout, cancellation, or retry anywhere: every OS
// failure surfaces once, to the direct caller.
package spawn
