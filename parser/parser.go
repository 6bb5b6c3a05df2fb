// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/danielhkuo/votetally/models"
)

// ParseError reports a line that violates the message grammar. Line is
// 1-based and Text is the offending line after trimming.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// FormatError reports input that ends in the middle of a message, before
// the message has both a creator name and a timestamp.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Line patterns from the message grammar. Both are anchored; only the
// first "-" separates a topic number from its subject.
var (
	declPattern   = regexp.MustCompile(`^(\d+)-(.*)$`)
	markerPattern = regexp.MustCompile(`^:(\d+):$`)
)

// Parser states. A message is a name line, a timestamp line, a run of
// topic declarations, and a run of vote marker/count pairs.
type state int

const (
	expectName state = iota
	expectTimestamp
	collectDeclarations
	collectVotes
)

// Options controls parse behavior.
type Options struct {
	// Lenient downgrades line-level grammar violations to warnings: an
	// unrecognized line is skipped, and a vote marker whose count line is
	// unparsable drops both lines. Input that ends mid-message stays
	// fatal regardless.
	Lenient bool
}

// Parse runs the message state machine over the whole input and returns
// the messages in file order. Blank lines separate messages, but blank
// lines between a message's declarations and its vote entries, or between
// vote entries, never do: while collecting votes a message only ends when
// a blank-line run is followed by a line that is neither a vote marker
// nor a topic declaration. That line starts the next message.
func Parse(input string, opts Options) ([]models.Message, error) {
	lines := strings.Split(input, "\n")

	var messages []models.Message
	var cur models.Message

	st := expectName
	pending := -1    // topic number awaiting its count line
	pendingLine := 0 // line of the pending marker
	blankRun := false

	flush := func() {
		cur.Index = len(messages) + 1
		messages = append(messages, cur)
		cur = models.Message{}
		blankRun = false
	}

	for i := 0; i < len(lines); i++ {
		n := i + 1
		line := strings.TrimSpace(lines[i])
		blank := line == ""

		switch st {
		case expectName:
			if blank {
				continue
			}
			// The first non-blank line is the creator, taken verbatim.
			cur = models.Message{Creator: line, Line: n}
			st = expectTimestamp

		case expectTimestamp:
			if blank {
				continue
			}
			// Stored verbatim; never validated as a real time format.
			cur.Timestamp = line
			st = collectDeclarations

		case collectDeclarations:
			if blank {
				st = collectVotes
				blankRun = true
				continue
			}
			if m := declPattern.FindStringSubmatch(line); m != nil {
				num, err := strconv.Atoi(m[1])
				if err != nil {
					if opts.Lenient {
						slog.Warn("skipping declaration with out-of-range topic number", "line", n, "text", line)
						continue
					}
					return nil, &ParseError{Line: n, Text: line, Reason: "topic number out of range"}
				}
				cur.Declarations = append(cur.Declarations, models.TopicDeclaration{
					Number:  num,
					Subject: strings.TrimSpace(m[2]),
					Line:    n,
				})
				continue
			}
			if markerPattern.MatchString(line) {
				// The vote section starts here; re-process this line.
				st = collectVotes
				blankRun = false
				i--
				continue
			}
			if opts.Lenient {
				slog.Warn("skipping unrecognized topic line", "line", n, "text", line)
				continue
			}
			return nil, &ParseError{Line: n, Text: line, Reason: "unrecognized topic line"}

		case collectVotes:
			if pending >= 0 {
				// A marker was seen; the next non-blank line must be the count.
				if blank {
					continue
				}
				votes, err := parseCount(line)
				if err != nil {
					if opts.Lenient {
						slog.Warn("skipping vote with unparsable count",
							"line", n, "text", line, "topic", pending)
						pending = -1
						continue
					}
					return nil, &ParseError{
						Line:   n,
						Text:   line,
						Reason: fmt.Sprintf("vote count for topic %d is not a non-negative integer", pending),
					}
				}
				cur.Votes = append(cur.Votes, models.VoteEntry{Topic: pending, Votes: votes, Line: pendingLine})
				pending = -1
				blankRun = false
				continue
			}
			if blank {
				blankRun = true
				continue
			}
			if m := markerPattern.FindStringSubmatch(line); m != nil {
				num, err := strconv.Atoi(m[1])
				if err != nil {
					if opts.Lenient {
						slog.Warn("skipping marker with out-of-range topic number", "line", n, "text", line)
						continue
					}
					return nil, &ParseError{Line: n, Text: line, Reason: "topic number out of range"}
				}
				pending = num
				pendingLine = n
				blankRun = false
				continue
			}
			if m := declPattern.FindStringSubmatch(line); m != nil {
				// Declarations may trail into the vote section; they still
				// belong to the current message.
				num, err := strconv.Atoi(m[1])
				if err != nil {
					if opts.Lenient {
						slog.Warn("skipping declaration with out-of-range topic number", "line", n, "text", line)
						continue
					}
					return nil, &ParseError{Line: n, Text: line, Reason: "topic number out of range"}
				}
				cur.Declarations = append(cur.Declarations, models.TopicDeclaration{
					Number:  num,
					Subject: strings.TrimSpace(m[2]),
					Line:    n,
				})
				blankRun = false
				continue
			}
			if blankRun {
				// A blank-line run followed by an unrecognized line is the
				// next message's name line.
				flush()
				st = expectName
				i--
				continue
			}
			if opts.Lenient {
				slog.Warn("skipping unexpected line in vote section", "line", n, "text", line)
				continue
			}
			return nil, &ParseError{Line: n, Text: line, Reason: "unexpected line in vote section"}
		}
	}

	// End of input.
	switch st {
	case expectName:
		// Clean end: no message in progress.
	case expectTimestamp:
		return nil, &FormatError{
			Line:   cur.Line,
			Reason: fmt.Sprintf("message from %q has no timestamp before end of input", cur.Creator),
		}
	case collectDeclarations:
		flush()
	case collectVotes:
		if pending >= 0 {
			if !opts.Lenient {
				return nil, &ParseError{
					Line:   pendingLine,
					Text:   fmt.Sprintf(":%d:", pending),
					Reason: "vote marker without a count before end of input",
				}
			}
			slog.Warn("dropping vote marker without a count at end of input",
				"line", pendingLine, "topic", pending)
		}
		flush()
	}

	return messages, nil
}

// parseCount parses a vote count line: a non-negative base-10 integer.
// The caller trims the line first.
func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative count %d", v)
	}
	return v, nil
}
