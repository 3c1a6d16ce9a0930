// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/palisade/platform"
)

func listProfilesCmd(args []string, logger *slog.Logger) error {
	flagSet := pflag.NewFlagSet("list-profiles", pflag.ContinueOnError)
	profileFiles := flagSet.StringArray("profile-file", nil, "additional profile document (repeatable)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	loader, err := loadProfiles(*profileFiles, logger)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tDESCRIPTION")
	for _, name := range loader.List() {
		description := ""
		if def := loader.Describe(name); def != nil {
			description = def.Description
		}
		fmt.Fprintf(writer, "%s\t%s\n", name, description)
	}
	return writer.Flush()
}

func showProfileCmd(args []string, logger *slog.Logger) error {
	flagSet := pflag.NewFlagSet("show-profile", pflag.ContinueOnError)
	profileFiles := flagSet.StringArray("profile-file", nil, "additional profile document (repeatable)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	rest := flagSet.Args()
	if len(rest) != 1 {
		return fmt.Errorf("show-profile takes exactly one profile name")
	}
	name := rest[0]

	loader, err := loadProfiles(*profileFiles, logger)
	if err != nil {
		return err
	}

	def := loader.Describe(name)
	if def == nil {
		return fmt.Errorf("profile not found: %s", name)
	}

	fmt.Printf("name: %s\n", name)
	if def.Description != "" {
		fmt.Printf("description: %s\n", def.Description)
	}
	if def.Inherit != "" {
		fmt.Printf("inherit: %s\n", def.Inherit)
	}

	// The resolved view includes inherited operations, each with its
	// support level on this host.
	ops, err := loader.Resolve(name)
	if err != nil {
		return err
	}
	fmt.Println()
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "OPERATION\tSUPPORT")
	for _, op := range ops {
		fmt.Fprintf(writer, "%s\t%s\n", op, platform.Support(op))
	}
	return writer.Flush()
}
