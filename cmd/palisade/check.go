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

	"github.com/bureau-foundation/palisade/capability"
	"github.com/bureau-foundation/palisade/platform"
)

// supportRow is one line of the check table.
type supportRow struct {
	op        capability.Operation
	level     capability.SupportLevel
	grantable bool
}

// buildSupportRows evaluates every operation against the running
// platform.
func buildSupportRows(ops []capability.Operation) []supportRow {
	rows := make([]supportRow, 0, len(ops))
	for _, op := range ops {
		level := platform.Support(op)
		rows = append(rows, supportRow{op: op, level: level, grantable: level.Grantable()})
	}
	return rows
}

func checkCmd(args []string, logger *slog.Logger) error {
	flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
	profileName := flagSet.String("profile", "", "profile name to check (required)")
	profileFiles := flagSet.StringArray("profile-file", nil, "additional profile document (repeatable)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if *profileName == "" {
		return fmt.Errorf("check requires --profile")
	}

	loader, err := loadProfiles(*profileFiles, logger)
	if err != nil {
		return err
	}
	ops, err := loader.Resolve(*profileName)
	if err != nil {
		return err
	}

	rows := buildSupportRows(ops)
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "OPERATION\tSUPPORT\tOK")
	rejected := 0
	for _, row := range rows {
		ok := "yes"
		if !row.grantable {
			ok = "no"
			rejected++
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", row.op, row.level, ok)
	}
	writer.Flush()

	if rejected > 0 {
		return fmt.Errorf("profile %q: %d of %d operations cannot be granted exactly on this host", *profileName, rejected, len(rows))
	}
	return nil
}
