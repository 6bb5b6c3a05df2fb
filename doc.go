// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the votetally report tool.

Votetally reads a text file of chat-style voting messages, tallies the
votes for each proposed topic, and writes a CSV report sorted by vote
count, highest first.

# Running

The input file comes from a flag or an environment variable:

	go run main.go -i topics.txt

Or:

	INPUT_FILE=topics.txt go run main.go

A summary of the top topics is printed to stdout and the full report is
written to voting_results.csv (override with -o).

# Configuration

Required settings:

  - INPUT_FILE (-i): File of voting messages to read

Optional settings:

  - OUTPUT_FILE (-o): CSV file to write (default: voting_results.csv)
  - VERBOSE (-v): Enable debug logging
  - STRICT_MODE (-strict): Fail on votes for undeclared topics
  - LENIENT_MODE (-lenient): Skip malformed lines instead of failing
  - INCLUDE_UNVOTED (-include-unvoted): Emit zero-vote rows

# Architecture

The tool is a straight pipeline with one package per stage:

  - parser: Text file → messages (state machine over lines)
  - aggregate: Messages → result rows (per-message topic resolution)
  - report: Row sorting, CSV output, console summary
  - tally: Wires the stages together
  - models: Shared types for every stage
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
