// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bureau-foundation/palisade/capability"
	"github.com/bureau-foundation/palisade/platform"
)

// canonicalOperations is the representative shape of every operation
// variant, used to render the host's support matrix.
var canonicalOperations = []capability.Operation{
	capability.FileReadAll{Path: capability.Subpath("/example")},
	capability.FileReadAll{Path: capability.Literal("/example/file")},
	capability.FileReadMetadata{Path: capability.Subpath("/example")},
	capability.NetworkOutbound{Address: capability.AllAddresses()},
	capability.NetworkOutbound{Address: capability.TCPPort(443)},
	capability.NetworkOutbound{Address: capability.LocalSocket("/example.sock")},
	capability.SystemInfoRead{},
}

func supportCmd(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("support takes no arguments")
	}

	host := platform.Host()
	fmt.Printf("os: %s\n", host.OS)
	if host.KernelRelease != "" {
		fmt.Printf("kernel: %s\n", host.KernelRelease)
	}
	if host.OS == "linux" {
		fmt.Printf("landlock abi: %d\n", host.LandlockABI)
	}
	fmt.Println()

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "OPERATION\tSUPPORT")
	for _, op := range canonicalOperations {
		fmt.Fprintf(writer, "%s\t%s\n", op, platform.Support(op))
	}
	return writer.Flush()
}
