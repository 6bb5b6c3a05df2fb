// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - InputPath: File of voting messages to read (required)
  - OutputPath: CSV file to write (default: voting_results.csv)
  - Verbose: Enable debug logging
  - Strict: Fail on votes for undeclared topics
  - Lenient: Skip malformed lines instead of failing
  - IncludeUnvoted: Emit zero-vote rows for topics nobody voted on

# CLI Flags

	-i                Input file of voting messages
	-o                Output CSV file
	-v                Enable debug logging
	-strict           Fail on votes for undeclared topics
	-lenient          Skip malformed lines instead of failing
	-include-unvoted  Emit zero-vote rows for topics nobody voted on
	-env              Dotenv file to load before reading env variables

# Environment Variables

Flags fall back to environment variables:

	INPUT_FILE      → -i
	OUTPUT_FILE     → -o
	VERBOSE         → -v
	STRICT_MODE     → -strict
	LENIENT_MODE    → -lenient
	INCLUDE_UNVOTED → -include-unvoted

CLI flags take precedence over environment variables. A .env file in
the working directory is loaded automatically; -env points at an
explicit one.

# Validation

ParseFlags returns an error if the configuration is unusable:

  - INPUT_FILE must be provided
  - -strict and -lenient cannot be combined

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(cfg.InputPath)
	// ...
	rows, stats, err := tally.ParseAndReport(string(data), opts)
*/
package cliparse
