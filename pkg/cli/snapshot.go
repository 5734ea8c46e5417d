/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/vengine/sysprobe/pkg/config"
	"github.com/vengine/sysprobe/pkg/serializer"
	"github.com/vengine/sysprobe/pkg/snapshot"
)

// Flags are built per command so parse state never leaks between runs.

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Usage:   "config file (default is $HOME/.sysprobe.yaml)",
		Sources: cli.EnvVars("SYSPROBE_CONFIG"),
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("SYSPROBE_LOG_LEVEL", "LOG_LEVEL"),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("output format %v", serializer.SupportedFormats()),
		Sources: cli.EnvVars("SYSPROBE_FORMAT"),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write to file instead of stdout",
		Sources: cli.EnvVars("SYSPROBE_OUTPUT"),
	}
}

func timeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:    "timeout",
		Usage:   "bound on external GPU listing commands (0 means none)",
		Sources: cli.EnvVars("SYSPROBE_TIMEOUT"),
	}
}

type snapshotCmdOptions struct {
	logLevel string
	format   serializer.Format
	output   string
	timeout  time.Duration
}

// parseSnapshotCmdOptions merges flags over the config file.
func parseSnapshotCmdOptions(cmd *cli.Command, cfg *config.Config) (*snapshotCmdOptions, error) {
	opts := &snapshotCmdOptions{
		logLevel: cfg.LogLevel,
		format:   serializer.Format(cfg.Format),
		output:   cfg.Output,
		timeout:  cfg.Timeout,
	}

	if cmd.IsSet("log-level") {
		opts.logLevel = cmd.String("log-level")
	}
	if cmd.IsSet("format") {
		opts.format = serializer.Format(cmd.String("format"))
	}
	if cmd.IsSet("output") {
		opts.output = cmd.String("output")
	}
	if cmd.IsSet("timeout") {
		opts.timeout = cmd.Duration("timeout")
	}

	if opts.format.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q", opts.format)
	}
	if opts.timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative: %s", opts.timeout)
	}
	return opts, nil
}

func runSnapshot(ctx context.Context, cmd *cli.Command, snapOpts []snapshot.Option) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := parseSnapshotCmdOptions(cmd, cfg)
	if err != nil {
		return err
	}

	initLogger(opts.logLevel)

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	snap := snapshot.NewWithContext(ctx, snapOpts...)

	w := serializer.NewFileWriterOrStdout(opts.format, opts.output)
	defer func() {
		if err := w.Close(); err != nil {
			slog.Error("failed to close output", "error", err, "output", opts.output)
		}
	}()

	if err := w.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", "error", err)
		return fmt.Errorf("failed to serialize: %w", err)
	}
	return nil
}
