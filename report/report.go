// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/votetally/models"
)

// Header is the fixed CSV header row.
var Header = []string{
	models.ColCreatorName,
	models.ColTopicNumber,
	models.ColVotes,
	models.ColSubject,
}

const (
	summaryLimit      = 10
	subjectDisplayMax = 40
	dividerWidth      = 80
)

// SortByVotes orders rows by vote count, highest first. The sort is
// stable: rows with equal counts keep their input order.
func SortByVotes(rows []models.ResultRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Votes > rows[j].Votes
	})
}

// WriteCSV writes the header and one record per row to w. Quoting is
// left to encoding/csv, which only quotes fields that need it.
func WriteCSV(w io.Writer, rows []models.ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.CreatorName,
			strconv.Itoa(r.TopicNumber),
			strconv.Itoa(r.Votes),
			r.Subject,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes rows to path, creating or truncating the file.
func WriteCSVFile(path string, rows []models.ResultRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// Summarize computes roll-up stats over the rows. Top points at the
// highest-vote row with the first occurrence winning ties, so calling
// this after SortByVotes makes Top the first row.
func Summarize(rows []models.ResultRow, messageCount int) models.SummaryStats {
	stats := models.SummaryStats{Messages: messageCount, Rows: len(rows)}

	type creatorTopic struct {
		creator string
		topic   int
	}
	creators := make(map[string]bool)
	topics := make(map[creatorTopic]bool)

	for i := range rows {
		r := &rows[i]
		stats.TotalVotes += r.Votes
		creators[r.CreatorName] = true
		topics[creatorTopic{r.CreatorName, r.TopicNumber}] = true
		if stats.Top == nil || r.Votes > stats.Top.Votes {
			stats.Top = r
		}
	}

	stats.Creators = len(creators)
	stats.Topics = len(topics)
	return stats
}

// WriteSummary renders a human-readable summary of the sorted rows: a
// fixed-width table of the top entries followed by totals. It goes to a
// separate writer than the CSV and never mixes with it.
func WriteSummary(w io.Writer, stats models.SummaryStats, rows []models.ResultRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No topics found.")
		return
	}

	divider := strings.Repeat("-", dividerWidth)

	fmt.Fprintf(w, "\nFound %s from %s:\n",
		english.Plural(stats.Rows, "topic", ""),
		english.Plural(stats.Messages, "message", ""))
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "%-15s %-8s %-8s %s\n", "Creator", "Topic#", "Votes", "Subject")
	fmt.Fprintln(w, divider)

	shown := rows
	if len(shown) > summaryLimit {
		shown = shown[:summaryLimit]
	}
	for _, r := range shown {
		fmt.Fprintf(w, "%-15s %-8d %-8d %s\n",
			r.CreatorName, r.TopicNumber, r.Votes, truncateSubject(r.Subject))
	}
	if len(rows) > summaryLimit {
		fmt.Fprintf(w, "... and %s\n", english.Plural(len(rows)-summaryLimit, "more topic", ""))
	}

	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Total votes: %s across %s by %s\n",
		humanize.Comma(int64(stats.TotalVotes)),
		english.Plural(stats.Topics, "topic", ""),
		english.Plural(stats.Creators, "creator", ""))
	if stats.Top != nil {
		fmt.Fprintf(w, "Top topic: %q by %s with %s\n",
			truncateSubject(stats.Top.Subject), stats.Top.CreatorName,
			english.Plural(stats.Top.Votes, "vote", ""))
	}
}

// truncateSubject caps a subject at subjectDisplayMax runes for the
// fixed-width table. CSV output always carries the full subject.
func truncateSubject(s string) string {
	r := []rune(s)
	if len(r) <= subjectDisplayMax {
		return s
	}
	return string(r[:subjectDisplayMax]) + "..."
}
