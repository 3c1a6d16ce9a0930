// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package profiledef

// defaultProfilesYAML holds the built-in profiles. They describe
// common shapes, not policy: whether a profile is grantable on the
// current platform is decided by profile.New at construction time.
const defaultProfilesYAML = `
profiles:
  # Read-only access to the system toolchain and shared libraries.
  # The usual base for anything that runs a dynamically linked
  # program.
  toolchain-read:
    description: "read access to system binaries and libraries"
    operations:
      - op: file-read
        path: /usr
        scope: subpath
      - op: file-read
        path: /bin
        scope: subpath
      - op: file-read
        path: /lib
        scope: subpath
      - op: file-read
        path: /lib64
        scope: subpath
      - op: file-read
        path: /etc/ld.so.cache
        scope: literal

  # Toolchain access plus name resolution configuration and
  # unrestricted outbound network.
  network-client:
    description: "toolchain read access plus outbound network"
    inherit: toolchain-read
    operations:
      - op: file-read
        path: /etc/resolv.conf
        scope: literal
      - op: file-read
        path: /etc/hosts
        scope: literal
      - op: network-outbound
        address: all

  # Nothing at all. Every operation is denied; useful for pure
  # computation over inherited descriptors.
  empty:
    description: "no operations allowed"
    operations: []
`
