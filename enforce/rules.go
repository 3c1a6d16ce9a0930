// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package enforce

import (
	"fmt"

	"github.com/bureau-foundation/palisade/capability"
)

// ruleSet is the enforceable shape of a profile on Linux: the paths
// Landlock will grant read access to, split by pattern scope, and
// whether socket syscalls stay available.
type ruleSet struct {
	readDirs     []string
	readFiles    []string
	allowNetwork bool
}

// rulesFromOperations derives the rule set, rejecting any operation
// the Linux mechanisms cannot express exactly. Profile validation
// already excludes those on this platform; re-checking here keeps
// activation fail-closed even against a payload that skipped it.
func rulesFromOperations(ops []capability.Operation) (ruleSet, error) {
	var rules ruleSet
	for i, op := range ops {
		switch op := op.(type) {
		case capability.FileReadAll:
			switch op.Path.Scope {
			case capability.PathSubpath:
				rules.readDirs = append(rules.readDirs, op.Path.Path)
			case capability.PathLiteral:
				rules.readFiles = append(rules.readFiles, op.Path.Path)
			default:
				return ruleSet{}, fmt.Errorf("operation %d: unknown path scope in %s", i, op)
			}
		case capability.NetworkOutbound:
			if op.Address.Kind != capability.AddressAll {
				return ruleSet{}, fmt.Errorf("operation %d: %s cannot be granted exactly on linux", i, op)
			}
			rules.allowNetwork = true
		default:
			return ruleSet{}, fmt.Errorf("operation %d: %s cannot be granted exactly on linux", i, op)
		}
	}
	return rules, nil
}
