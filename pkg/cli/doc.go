// Package cli implements the command-line interface for the sysprobe tool.
//
// # Overview
//
// sysprobe captures a one-shot snapshot of the host it runs on and prints it.
// It has a single root command and no subcommands:
//
//	sysprobe [--format report|table] [--output FILE] [--timeout 5s] [--log-level debug]
//
// The report format is the fixed System Information layout. The table format
// prints one FIELD/VALUE row per snapshot field.
//
// # Configuration
//
// Settings are resolved in this order, later wins:
//
//  1. built-in defaults (info, report, stdout, no timeout)
//  2. the YAML file named by --config, or $HOME/.sysprobe.yaml when present
//  3. SYSPROBE_* environment variables
//  4. command-line flags
//
// # Signals
//
// SIGINT and SIGTERM cancel the capture context, which terminates any
// in-flight GPU listing command. The snapshot still prints with placeholder
// GPU names.
package cli
