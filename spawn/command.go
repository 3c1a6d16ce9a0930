// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package spawn

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EnvEntry is one environment pair passed to a child process. Keys
// and values are byte strings, but exec requires them to encode as
// text: [EnvEntry.Encode] rejects pairs that are not valid UTF-8,
// contain a NUL byte, or whose key is empty or contains '='.
type EnvEntry struct {
	Key   string
	Value string
}

// Encode renders the entry in the KEY=VALUE form the kernel expects,
// or an error if the pair cannot be represented as text.
func (e EnvEntry) Encode() (string, error) {
	if e.Key == "" {
		return "", fmt.Errorf("environment key is empty")
	}
	if !utf8.ValidString(e.Key) || !utf8.ValidString(e.Value) {
		return "", fmt.Errorf("environment entry %q is not valid UTF-8", e.Key)
	}
	if strings.ContainsRune(e.Key, '=') {
		return "", fmt.Errorf("environment key %q contains '='", e.Key)
	}
	if strings.ContainsRune(e.Key, 0) || strings.ContainsRune(e.Value, 0) {
		return "", fmt.Errorf("environment entry %q contains a NUL byte", e.Key)
	}
	return e.Key + "=" + e.Value, nil
}

// EnvFromStrings converts KEY=VALUE strings (the os.Environ form)
// into entries, preserving order. A string without '=' becomes a
// key with an empty value.
func EnvFromStrings(environ []string) []EnvEntry {
	entries := make([]EnvEntry, 0, len(environ))
	for _, s := range environ {
		key, value, _ := strings.Cut(s, "=")
		entries = append(entries, EnvEntry{Key: key, Value: value})
	}
	return entries
}

// Command describes the program a child process will run: the
// program path (used both to locate the image and as argument zero),
// the argument list, and the environment as ordered entries. No
// PATH lookup is performed; Path must locate the executable.
type Command struct {
	Path string
	Args []string
	Env  []EnvEntry
}

// NewCommand returns a command running the program at path with the
// given arguments and an empty environment.
func NewCommand(path string, args ...string) *Command {
	return &Command{Path: path, Args: args}
}

// AddEnv appends an environment entry. Validation happens at spawn
// time, before any OS resource is created.
func (c *Command) AddEnv(key, value string) {
	c.Env = append(c.Env, EnvEntry{Key: key, Value: value})
}

// argv is the argument vector handed to exec: the program path
// first, then the arguments. The terminating sentinel is the
// runtime's concern.
func (c *Command) argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Path)
	argv = append(argv, c.Args...)
	return argv
}

// encodeEnv renders every entry, in order, failing on the first pair
// that cannot be represented as text.
func (c *Command) encodeEnv() ([]string, error) {
	env := make([]string, 0, len(c.Env))
	for _, entry := range c.Env {
		encoded, err := entry.Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding environment: %w", err)
		}
		env = append(env, encoded)
	}
	return env, nil
}
