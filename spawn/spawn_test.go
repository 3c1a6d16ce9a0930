// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package spawn

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"syscall"
	"testing"

	"github.com/bureau-foundation/palisade/capability"
	"github.com/bureau-foundation/palisade/profile"
)

const shell = "/bin/sh"

func shCommand(t *testing.T, script string) *Command {
	t.Helper()
	if _, err := os.Stat(shell); err != nil {
		t.Skipf("no %s on this host: %v", shell, err)
	}
	return NewCommand(shell, "-c", script)
}

func startAndWait(t *testing.T, cmd *Command) (ExitStatus, string, string) {
	t.Helper()
	proc, err := Start(cmd)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer proc.Close()

	proc.Stdin().Close()
	stdout, err := io.ReadAll(proc.Stdout())
	if err != nil {
		t.Fatalf("reading stdout: %v", err)
	}
	stderr, err := io.ReadAll(proc.Stderr())
	if err != nil {
		t.Fatalf("reading stderr: %v", err)
	}

	status, err := proc.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	return status, string(stdout), string(stderr)
}

func TestExitCodeRoundTrip(t *testing.T) {
	for _, code := range []int{0, 1, 7, 42, 255} {
		t.Run(fmt.Sprintf("code%d", code), func(t *testing.T) {
			status, _, _ := startAndWait(t, shCommand(t, fmt.Sprintf("exit %d", code)))
			got, exited := status.ExitCode()
			if !exited || got != code {
				t.Errorf("status = %v, want exit code %d", status, code)
			}
			if status.Success() != (code == 0) {
				t.Errorf("Success() = %v for code %d", status.Success(), code)
			}
		})
	}
}

func TestSignalRoundTrip(t *testing.T) {
	status, _, _ := startAndWait(t, shCommand(t, "kill -KILL $$"))
	sig, signaled := status.TermSignal()
	if !signaled || sig != syscall.SIGKILL {
		t.Fatalf("status = %v, want signal %d", status, syscall.SIGKILL)
	}
	if status.Success() {
		t.Error("signal death reports success")
	}
}

func TestStreamWiring(t *testing.T) {
	cmd := shCommand(t, "cat; echo oops >&2")
	cmd.AddEnv("PATH", "/usr/bin:/bin")

	proc, err := Start(cmd)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer proc.Close()

	payload := "through the pipe\nline two\n"
	if _, err := io.WriteString(proc.Stdin(), payload); err != nil {
		t.Fatalf("writing stdin: %v", err)
	}
	proc.Stdin().Close()

	stdout, err := io.ReadAll(proc.Stdout())
	if err != nil {
		t.Fatalf("reading stdout: %v", err)
	}
	stderr, err := io.ReadAll(proc.Stderr())
	if err != nil {
		t.Fatalf("reading stderr: %v", err)
	}

	status, err := proc.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !status.Success() {
		t.Fatalf("child failed: %v (stderr: %q)", status, stderr)
	}
	if string(stdout) != payload {
		t.Errorf("stdout = %q, want %q", stdout, payload)
	}
	if string(stderr) != "oops\n" {
		t.Errorf("stderr = %q, want %q", stderr, "oops\n")
	}
}

func TestEnvironmentReachesChild(t *testing.T) {
	cmd := shCommand(t, `printf '%s' "$FOO"`)
	cmd.AddEnv("FOO", "bar")

	status, stdout, _ := startAndWait(t, cmd)
	if !status.Success() {
		t.Fatalf("child failed: %v", status)
	}
	if stdout != "bar" {
		t.Errorf("child saw FOO=%q, want %q", stdout, "bar")
	}
}

func TestInvalidEnvironmentFailsBeforeSpawn(t *testing.T) {
	before := countOpenDescriptors(t)

	cmd := shCommand(t, "exit 0")
	cmd.AddEnv("BAD\xffKEY", "x")

	if _, err := Start(cmd); err == nil {
		t.Fatal("Start accepted a non-UTF-8 environment key")
	}

	if after := countOpenDescriptors(t); after != before {
		t.Errorf("descriptor count changed from %d to %d on a rejected spawn", before, after)
	}
}

func TestSpawnFailureUnwindsPipes(t *testing.T) {
	before := countOpenDescriptors(t)

	if _, err := Start(NewCommand("/nonexistent/program")); err == nil {
		t.Fatal("Start accepted a nonexistent program")
	}

	if after := countOpenDescriptors(t); after != before {
		t.Errorf("descriptor count changed from %d to %d on a failed spawn", before, after)
	}
}

func TestNoDescriptorLeak(t *testing.T) {
	before := countOpenDescriptors(t)

	proc, err := Start(shCommand(t, "exit 0"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Exactly the three parent-side stream handles are new.
	if during := countOpenDescriptors(t); during != before+3 {
		t.Errorf("open descriptors went from %d to %d after spawn, want +3", before, during)
	}

	if _, err := proc.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if err := proc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if after := countOpenDescriptors(t); after != before {
		t.Errorf("open descriptors went from %d to %d after close, want equal", before, after)
	}
}

func TestWaitIsMemoized(t *testing.T) {
	proc, err := Start(shCommand(t, "exit 5"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer proc.Close()

	first, err := proc.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	second, err := proc.Wait()
	if err != nil {
		t.Fatalf("second Wait: %v", err)
	}
	if first != second {
		t.Errorf("Wait results differ: %v then %v", first, second)
	}
	if code, _ := first.ExitCode(); code != 5 {
		t.Errorf("exit code = %d, want 5", code)
	}
}

func TestConcurrentSupervisors(t *testing.T) {
	// Pid-scoped waiting means two supervisors in one parent never
	// steal each other's termination notifications.
	slow, err := Start(shCommand(t, "cat"))
	if err != nil {
		t.Fatalf("Start slow child: %v", err)
	}
	defer slow.Close()

	fast, err := Start(shCommand(t, "exit 3"))
	if err != nil {
		t.Fatalf("Start fast child: %v", err)
	}
	defer fast.Close()

	status, err := fast.Wait()
	if err != nil {
		t.Fatalf("Wait on fast child: %v", err)
	}
	if code, _ := status.ExitCode(); code != 3 {
		t.Errorf("fast child status = %v, want exit code 3", status)
	}

	// Unblock the slow child (cat exits on stdin EOF) and reap it.
	slow.Stdin().Close()
	status, err = slow.Wait()
	if err != nil {
		t.Fatalf("Wait on slow child: %v", err)
	}
	if !status.Success() {
		t.Errorf("slow child status = %v, want success", status)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	proc, err := Start(shCommand(t, "exit 0"))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := proc.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if err := proc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := proc.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

// listAccess is an escape-hatch operation standing in for a
// backend-specific grant, with deterministic support on every
// platform so the end-to-end test never depends on kernel features.
type listAccess struct {
	dir string
}

func (l listAccess) Support() capability.SupportLevel { return capability.CanBeAllowed }
func (l listAccess) String() string                   { return "list-access:" + l.dir }

// End-to-end: a validated profile gating a listing of a known
// directory; the child lists it, exits 0, and the parent observes
// the expected output and a successful typed status.
func TestProfileGatedListing(t *testing.T) {
	dir := t.TempDir()

	prof, err := profile.New([]capability.Operation{
		capability.PlatformSpecific{Op: listAccess{dir: dir}},
	})
	if err != nil {
		t.Fatalf("profile.New: %v", err)
	}
	if ops := prof.AllowedOperations(); len(ops) != 1 {
		t.Fatalf("profile has %d operations, want 1", len(ops))
	}

	for _, name := range []string{"alpha", "beta", "gamma"} {
		if err := os.WriteFile(dir+"/"+name, nil, 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}

	cmd := shCommand(t, "ls "+dir+" && exit 0")
	cmd.AddEnv("PATH", "/usr/bin:/bin")

	status, stdout, stderr := startAndWait(t, cmd)
	if !status.Success() {
		t.Fatalf("listing failed: %v (stderr: %q)", status, stderr)
	}

	got := strings.Fields(stdout)
	sort.Strings(got)
	want := []string{"alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("listing = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("listing[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// countOpenDescriptors reports the number of open file descriptors
// in this process, or skips the test where /proc is unavailable.
func countOpenDescriptors(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("cannot enumerate descriptors: %v", err)
	}
	// The ReadDir itself holds one descriptor; it is closed by the
	// time we return, but it appears in its own listing. Subtract
	// it for a stable count.
	return len(entries) - 1
}
