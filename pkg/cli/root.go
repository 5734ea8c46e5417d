/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/vengine/sysprobe/pkg/config"
	"github.com/vengine/sysprobe/pkg/env"
	"github.com/vengine/sysprobe/pkg/logging"
	"github.com/vengine/sysprobe/pkg/snapshot"
)

const (
	name           = "sysprobe"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command with the process arguments and exits
// non-zero on failure. This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func newRootCmd(snapOpts ...snapshot.Option) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Print a snapshot of host identity and resources",
		Description: fmt.Sprintf(`sysprobe - host system snapshot

Version: %s
Commit:  %s
Built:   %s

Captures operating system, architecture, user and host identity,
working/home/temp directories, shell, CPU, RAM and GPU inventory,
and prints them as a fixed-layout report or a FIELD/VALUE table.

Settings are read from $HOME/.sysprobe.yaml when present; flags and
SYSPROBE_* environment variables take precedence.`, version, commit, date),
		Flags: []cli.Flag{
			configFlag(),
			logLevelFlag(),
			formatFlag(),
			outputFlag(),
			timeoutFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSnapshot(ctx, cmd, snapOpts)
		},
	}
}

// loadConfig reads the file named by --config, or the optional default
// file in the home directory.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		return config.Load(path, false)
	}

	home, err := env.ResolveAny(env.HomeKeys, env.HomeLabel)
	if err != nil {
		// no home directory, no default config file
		return config.Default(), nil
	}
	return config.Load(config.DefaultPath(home), true)
}

// initLogger configures slog once flags and config are resolved so the
// effective level applies before any capture work starts.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.SetDefault(slog.Default().With("invocation", uuid.NewString()))
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}
