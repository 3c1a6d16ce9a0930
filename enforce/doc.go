// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package enforce is the Linux enforcement backend behind the
// platform.Activator contract. It commits a profile to the calling
// process with three kernel mechanisms, applied in order:
//
//  1. PR_SET_NO_NEW_PRIVS, so no descendant regains privilege
//     through setuid binaries or file capabilities;
//  2. a Landlock ruleset granting read access to exactly the paths
//     the profile's file-read operations name, denying the rest of
//     the filesystem;
//  3. a seccomp filter returning EPERM from socket-family syscalls
//     unless the profile grants outbound network access.
//
// Everything is fail-closed: kernels without Landlock or seccomp
// make [New] or Activate fail rather than silently under-enforce,
// and operations the Linux table rates as imprecise are rejected at
// activation even though profile validation already excludes them.
//
// This package imports the core; the core never imports it. On
// non-Linux builds [New] returns an error.
package enforce
