// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package spawn

import (
	"fmt"
	"syscall"
)

// ExitStatus is the typed termination outcome of a child process:
// either a normal exit carrying a code, or death by signal. It is
// produced exactly once, by a successful [Process.Wait].
type ExitStatus struct {
	exited bool
	code   int
	signal syscall.Signal
}

// Code returns a status for a normal exit with the given code.
func Code(code int) ExitStatus {
	return ExitStatus{exited: true, code: code}
}

// Signal returns a status for termination by the given signal.
func Signal(sig syscall.Signal) ExitStatus {
	return ExitStatus{signal: sig}
}

// ExitCode returns the exit code and true for a normal exit, or
// zero and false for a signal death.
func (s ExitStatus) ExitCode() (int, bool) {
	return s.code, s.exited
}

// TermSignal returns the terminating signal and true for a signal
// death, or zero and false for a normal exit.
func (s ExitStatus) TermSignal() (syscall.Signal, bool) {
	if s.exited {
		return 0, false
	}
	return s.signal, true
}

// Success reports whether the child exited normally with code 0.
func (s ExitStatus) Success() bool {
	return s.exited && s.code == 0
}

func (s ExitStatus) String() string {
	if s.exited {
		return fmt.Sprintf("exit code %d", s.code)
	}
	return fmt.Sprintf("signal %d (%s)", int(s.signal), s.signal)
}
