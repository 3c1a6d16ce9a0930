// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package enforce

import (
	"errors"
	"fmt"
	"syscall"

	seccomp "github.com/elastic/go-seccomp-bpf"
	"github.com/landlock-lsm/go-landlock/landlock"
	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/palisade/capability"
	"github.com/bureau-foundation/palisade/platform"
)

// socketSyscalls are denied when the profile grants no outbound
// network access. Denial is EPERM rather than SIGSYS so confined
// programs see an ordinary error instead of dying.
var socketSyscalls = []string{
	"socket", "socketpair", "connect", "bind",
	"listen", "accept", "accept4", "sendto",
	"sendmsg", "sendmmsg", "recvfrom", "recvmsg",
	"recvmmsg", "shutdown", "getsockopt",
	"setsockopt", "getsockname", "getpeername",
}

type activator struct {
	abi int
}

// New returns the Linux activation backend, or an error when the
// kernel offers no usable Landlock ABI. Checking at construction
// keeps failures in the parent, where they are diagnosable, instead
// of in the half-built child.
func New() (platform.Activator, error) {
	host := platform.Host()
	if host.LandlockABI < 1 {
		return nil, fmt.Errorf("landlock unavailable on this kernel (release %s)", host.KernelRelease)
	}
	return &activator{abi: host.LandlockABI}, nil
}

// Activate commits ops as this process's allow-list. Irreversible;
// see platform.Activator for the full contract.
func (a *activator) Activate(ops []capability.Operation) error {
	rules, err := rulesFromOperations(ops)
	if err != nil {
		return err
	}

	// no_new_privs must precede both mechanisms: Landlock requires
	// it, and loading seccomp without it needs CAP_SYS_ADMIN.
	if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return fmt.Errorf("setting no_new_privs: %w", err)
	}

	if err := a.restrictPaths(rules); err != nil {
		return fmt.Errorf("applying landlock rules: %w", err)
	}

	if err := applySeccomp(rules.allowNetwork); err != nil {
		return fmt.Errorf("applying seccomp filter: %w", err)
	}

	return nil
}

// restrictPaths installs the Landlock ruleset: read+execute on the
// granted paths, everything else denied. The config is pinned to the
// kernel's ABI level; no best-effort downgrade, by policy.
func (a *activator) restrictPaths(rules ruleSet) error {
	cfg, err := landlockConfig(a.abi)
	if err != nil {
		return err
	}

	llRules := make([]landlock.Rule, 0, len(rules.readDirs)+len(rules.readFiles))
	for _, dir := range rules.readDirs {
		llRules = append(llRules, landlock.RODirs(dir))
	}
	for _, file := range rules.readFiles {
		llRules = append(llRules, landlock.ROFiles(file))
	}

	return cfg.RestrictPaths(llRules...)
}

// landlockConfig pins the config to the probed ABI level.
func landlockConfig(abi int) (landlock.Config, error) {
	switch {
	case abi >= 7:
		return landlock.V7, nil
	case abi == 6:
		return landlock.V6, nil
	case abi == 5:
		return landlock.V5, nil
	case abi == 4:
		return landlock.V4, nil
	case abi == 3:
		return landlock.V3, nil
	case abi == 2:
		return landlock.V2, nil
	case abi == 1:
		return landlock.V1, nil
	default:
		return landlock.Config{}, fmt.Errorf("unsupported landlock ABI v%d", abi)
	}
}

// applySeccomp installs the socket-syscall filter. With a network
// grant the policy is a no-op allow, still installed so a kernel
// without seccomp fails activation instead of passing silently.
func applySeccomp(allowNetwork bool) error {
	policy := seccomp.Policy{DefaultAction: seccomp.ActionAllow}

	if allowNetwork {
		// Library policies need at least one syscall group.
		policy.Syscalls = []seccomp.SyscallGroup{{
			Names:  []string{"read"},
			Action: seccomp.ActionAllow,
		}}
	} else {
		policy.Syscalls = []seccomp.SyscallGroup{{
			Names:  socketSyscalls,
			Action: seccomp.Action(uint32(seccomp.ActionErrno) | uint32(syscall.EPERM)),
		}}
	}

	filter := seccomp.Filter{
		NoNewPrivs: false, // already set via prctl
		Flag:       seccomp.FilterFlagTSync,
		Policy:     policy,
	}
	if err := seccomp.LoadFilter(filter); err != nil {
		if errors.Is(err, syscall.ENOSYS) || errors.Is(err, syscall.EINVAL) {
			return fmt.Errorf("seccomp unavailable on this kernel (%w)", err)
		}
		return err
	}
	return nil
}
