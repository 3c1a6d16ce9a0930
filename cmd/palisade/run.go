// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/palisade/lib/capture"
	"github.com/bureau-foundation/palisade/profile"
	"github.com/bureau-foundation/palisade/profiledef"
	"github.com/bureau-foundation/palisade/sandbox"
	"github.com/bureau-foundation/palisade/spawn"
)

// loadProfiles builds the loader used by run and check: built-in
// defaults, the standard search paths, then any explicit files.
func loadProfiles(files []string, logger *slog.Logger) (*profiledef.Loader, error) {
	loader, err := profiledef.LoadFromSearchPaths(logger)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if err := loader.LoadFile(file); err != nil {
			return nil, err
		}
	}
	return loader, nil
}

func runCmd(args []string, logger *slog.Logger) error {
	flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
	profileName := flagSet.String("profile", "", "profile name to confine the program under (required)")
	profileFiles := flagSet.StringArray("profile-file", nil, "additional profile document (repeatable)")
	capturePath := flagSet.String("capture", "", "also write the child's stdout to this zstd capture file")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	rest := flagSet.Args()
	if *profileName == "" {
		return fmt.Errorf("run requires --profile")
	}
	if len(rest) == 0 {
		return fmt.Errorf("run requires a program after --")
	}

	loader, err := loadProfiles(*profileFiles, logger)
	if err != nil {
		return err
	}
	ops, err := loader.Resolve(*profileName)
	if err != nil {
		return err
	}

	prof, err := profile.New(ops)
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("profile %q is not expressible on this host: %w (run 'palisade check' for the full table)", *profileName, err)
		}
		return err
	}

	program, err := exec.LookPath(rest[0])
	if err != nil {
		return fmt.Errorf("resolving program: %w", err)
	}

	cmd := spawn.NewCommand(program, rest[1:]...)
	cmd.Env = spawn.EnvFromStrings(os.Environ())

	logger.Debug("starting confined child",
		"profile", *profileName,
		"program", program,
		"operations", len(ops),
	)

	proc, err := sandbox.Start(prof, cmd)
	if err != nil {
		return err
	}
	defer proc.Close()

	var stdout io.Writer = os.Stdout
	if *capturePath != "" {
		capt, err := capture.Create(*capturePath)
		if err != nil {
			return err
		}
		defer func() {
			if err := capt.Close(); err != nil {
				logger.Error("closing capture file", "error", err)
			}
		}()
		stdout = io.MultiWriter(os.Stdout, capt)
	}

	// Forward our stdin to the child; the copy ends when our stdin
	// closes or the child stops reading. Output copies must finish
	// before Wait's status is reported so nothing is dropped.
	go func() {
		io.Copy(proc.Stdin(), os.Stdin)
		proc.Stdin().Close()
	}()

	var copies sync.WaitGroup
	copies.Add(2)
	go func() {
		defer copies.Done()
		io.Copy(stdout, proc.Stdout())
	}()
	go func() {
		defer copies.Done()
		io.Copy(os.Stderr, proc.Stderr())
	}()

	status, err := proc.Wait()
	if err != nil {
		return err
	}
	copies.Wait()

	if code, exited := status.ExitCode(); exited {
		if code == 0 {
			return nil
		}
		return &exitError{code: code}
	}
	sig, _ := status.TermSignal()
	logger.Info("child terminated by signal", "signal", int(sig))
	return &exitError{code: 128 + int(sig)}
}
