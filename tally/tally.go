// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"log/slog"

	"github.com/danielhkuo/votetally/aggregate"
	"github.com/danielhkuo/votetally/models"
	"github.com/danielhkuo/votetally/parser"
	"github.com/danielhkuo/votetally/report"
)

// Options bundle the pipeline's policy knobs.
type Options struct {
	// Strict fails on votes for undeclared topics instead of skipping them.
	Strict bool

	// Lenient downgrades line-level parse errors to warnings where the
	// surrounding message is still usable.
	Lenient bool

	// IncludeUnvoted emits zero-vote rows for declared topics nobody
	// voted on.
	IncludeUnvoted bool
}

// ParseAndReport runs the full pipeline over raw input: parse messages,
// flatten them to rows, sort by votes, and compute summary stats. The
// rows come back sorted and ready for report.WriteCSV and
// report.WriteSummary.
func ParseAndReport(input string, opts Options) ([]models.ResultRow, models.SummaryStats, error) {
	messages, err := parser.Parse(input, parser.Options{Lenient: opts.Lenient})
	if err != nil {
		return nil, models.SummaryStats{}, fmt.Errorf("parse input: %w", err)
	}
	slog.Info("parsed input", "messages", len(messages))

	rows, err := aggregate.Flatten(messages, aggregate.Options{
		Strict:         opts.Strict,
		IncludeUnvoted: opts.IncludeUnvoted,
	})
	if err != nil {
		return nil, models.SummaryStats{}, fmt.Errorf("aggregate votes: %w", err)
	}

	report.SortByVotes(rows)
	stats := report.Summarize(rows, len(messages))
	slog.Info("report ready", "rows", stats.Rows, "total_votes", stats.TotalVotes)

	return rows, stats, nil
}
