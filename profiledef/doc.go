// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package profiledef parses declarative profile documents and
// resolves named profiles into capability operation lists.
//
// Documents are authored as YAML or JSONC (JSON extended with
// comments and trailing commas) and hold named profiles with single
// inheritance. A [Loader] layers documents (built-in defaults, then
// files or directories; later wins) and resolves a name into
// []capability.Operation with the parent's operations first.
//
// Resolution produces operations only. Validation stays where it
// belongs: feed the result to profile.New, the single gate that
// decides whether this platform can grant the list exactly.
package profiledef
