// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package spawn

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Process is a spawned child under supervision. It exclusively owns
// the child's pid record and the parent-side ends of the three
// standard-stream pipes. Exactly one Process exists per spawn; the
// streams are released by [Process.Close] independent of whether the
// child has exited.
type Process struct {
	pid    int
	stdin  *os.File
	stdout *os.File
	stderr *os.File

	waited bool
	status ExitStatus
	closed bool
}

// Start spawns a child process running cmd with three freshly
// created pipes substituted for its standard input, output, and
// error.
//
// The environment is validated before any OS resource is created; a
// command with an unencodable entry fails without a child ever
// existing. Pipe or fork failures unwind every descriptor already
// created and return the underlying OS error. In the child, the
// pipe ends are rewired onto descriptors 0, 1, and 2 before the
// program image is replaced; if replacement fails the child
// terminates immediately with the OS error reported back through
// Start, never continuing into parent logic.
//
// On success the parent has closed the child-side pipe ends and the
// returned Process owns exactly three new descriptors.
func Start(cmd *Command) (*Process, error) {
	env, err := cmd.encodeEnv()
	if err != nil {
		return nil, err
	}

	var parentEnds, childEnds []*os.File
	unwind := func() {
		for _, f := range parentEnds {
			f.Close()
		}
		for _, f := range childEnds {
			f.Close()
		}
	}

	// Pipe 1: parent writes, child reads as stdin.
	stdinRead, stdinWrite, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdin pipe: %w", err)
	}
	parentEnds = append(parentEnds, stdinWrite)
	childEnds = append(childEnds, stdinRead)

	// Pipe 2: child writes as stdout, parent reads.
	stdoutRead, stdoutWrite, err := os.Pipe()
	if err != nil {
		unwind()
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	parentEnds = append(parentEnds, stdoutRead)
	childEnds = append(childEnds, stdoutWrite)

	// Pipe 3: child writes as stderr, parent reads.
	stderrRead, stderrWrite, err := os.Pipe()
	if err != nil {
		unwind()
		return nil, fmt.Errorf("creating stderr pipe: %w", err)
	}
	parentEnds = append(parentEnds, stderrRead)
	childEnds = append(childEnds, stderrWrite)

	// ForkExec duplicates this process, rewires Files onto
	// descriptors 0/1/2 in the child, and replaces the child's
	// image. A child-side failure (bad path, rewiring fault)
	// terminates the child unconditionally and surfaces here as
	// err; control never reaches target or parent code in a
	// half-rewired child.
	pid, err := syscall.ForkExec(cmd.Path, cmd.argv(), &syscall.ProcAttr{
		Env: env,
		Files: []uintptr{
			stdinRead.Fd(),
			stdoutWrite.Fd(),
			stderrWrite.Fd(),
		},
	})
	if err != nil {
		unwind()
		return nil, fmt.Errorf("spawning %s: %w", cmd.Path, err)
	}

	// The child owns its pipe ends now; keeping them open in the
	// parent would leak descriptors and hold the pipes open past
	// the child's exit.
	for _, f := range childEnds {
		f.Close()
	}

	return &Process{
		pid:    pid,
		stdin:  stdinWrite,
		stdout: stdoutRead,
		stderr: stderrRead,
	}, nil
}

// Pid returns the child's process identifier. It is stable for the
// lifetime of the Process.
func (p *Process) Pid() int { return p.pid }

// Stdin is the parent's write end of the child's standard input.
func (p *Process) Stdin() io.WriteCloser { return p.stdin }

// Stdout is the parent's read end of the child's standard output.
func (p *Process) Stdout() io.ReadCloser { return p.stdout }

// Stderr is the parent's read end of the child's standard error.
func (p *Process) Stderr() io.ReadCloser { return p.stderr }

// Wait blocks until the child terminates and returns its typed exit
// status. There is no timeout and no cancellation. The wait is
// scoped to this child's pid, so supervisors of other children in
// the same parent are unaffected. The status is produced once;
// repeated calls return the memoized value.
func (p *Process) Wait() (ExitStatus, error) {
	if p.waited {
		return p.status, nil
	}

	var ws unix.WaitStatus
	for {
		_, err := unix.Wait4(p.pid, &ws, 0, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return ExitStatus{}, fmt.Errorf("waiting for pid %d: %w", p.pid, err)
		}
		switch {
		case ws.Exited():
			p.status = Code(ws.ExitStatus())
		case ws.Signaled():
			p.status = Signal(ws.Signal())
		default:
			// Not a termination (should not happen without
			// WUNTRACED); keep waiting.
			continue
		}
		p.waited = true
		return p.status, nil
	}
}

// Close releases the three parent-side stream handles. It is
// idempotent and independent of the child's state: closing does not
// terminate or reap the child.
func (p *Process) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	var firstErr error
	for _, f := range []*os.File{p.stdin, p.stdout, p.stderr} {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
