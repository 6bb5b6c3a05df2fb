// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tally wires the stages of the voting pipeline together.
//
// # Pipeline
//
// ParseAndReport is the one entry point: raw text in, sorted rows and
// summary stats out. It runs parser.Parse, aggregate.Flatten,
// report.SortByVotes, and report.Summarize in that order and stops at
// the first stage that fails. Writing the CSV and printing the summary
// stay with the caller, which decides where each surface goes.
//
// # Policy
//
// Options map one-to-one onto the stage options: Lenient belongs to the
// parser, Strict and IncludeUnvoted to the aggregator. Strict and
// Lenient pull in opposite directions and the command line rejects the
// combination before it reaches this package.
package tally
