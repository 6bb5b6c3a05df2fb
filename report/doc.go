// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report sorts result rows and renders the two output surfaces:
// the CSV file and the console summary.
//
// # Ordering
//
// SortByVotes is the one ordering rule everything downstream relies on:
// vote count descending, ties broken by input order via a stable sort.
// Rows are sorted once, then both the CSV and the summary render the
// same slice.
//
// # CSV Output
//
// WriteCSV emits a fixed four-column header (creator_name, topic_number,
// votes, subject) followed by one record per row. Field quoting and
// escaping follow encoding/csv; subjects containing commas, quotes, or
// newlines round-trip through any compliant reader.
//
// # Summary Output
//
// WriteSummary prints a fixed-width table of the top ten rows with long
// subjects truncated, then overall totals. It writes to its own
// io.Writer so the summary can go to a terminal while the CSV goes to a
// file.
package report
