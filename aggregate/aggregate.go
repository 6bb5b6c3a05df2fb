// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"fmt"
	"log/slog"

	"github.com/danielhkuo/votetally/models"
)

// UnresolvedTopicError reports a vote whose topic number has no declaration
// in the same message. It is returned only in strict mode; the default
// policy logs and skips instead.
type UnresolvedTopicError struct {
	Creator      string
	Topic        int
	MessageIndex int
	Line         int
}

func (e *UnresolvedTopicError) Error() string {
	return fmt.Sprintf("message %d (%s) line %d: vote for undeclared topic %d",
		e.MessageIndex, e.Creator, e.Line, e.Topic)
}

// Options control how Flatten treats messy input.
type Options struct {
	// Strict turns votes for undeclared topics into errors instead of
	// logging and skipping them.
	Strict bool

	// IncludeUnvoted emits a zero-vote row for every declared topic that
	// received no vote in its message.
	IncludeUnvoted bool
}

// Flatten turns parsed messages into result rows, one per voted topic per
// message. Topic numbers are scoped to their message: topic 1 in two
// different messages is two different topics. Row order follows the input:
// messages in file order, votes in vote-section order.
func Flatten(messages []models.Message, opts Options) ([]models.ResultRow, error) {
	var rows []models.ResultRow
	for _, msg := range messages {
		// Later declarations of the same number override earlier ones.
		subjects := make(map[int]string, len(msg.Declarations))
		for _, decl := range msg.Declarations {
			if prev, ok := subjects[decl.Number]; ok && prev != decl.Subject {
				slog.Debug("overriding duplicate topic declaration",
					"creator", msg.Creator, "topic", decl.Number, "line", decl.Line)
			}
			subjects[decl.Number] = decl.Subject
		}

		votes := dedupeVotes(msg.Votes)

		voted := make(map[int]bool, len(votes))
		for _, v := range votes {
			subject, ok := subjects[v.Topic]
			if !ok {
				if opts.Strict {
					return nil, &UnresolvedTopicError{
						Creator:      msg.Creator,
						Topic:        v.Topic,
						MessageIndex: msg.Index,
						Line:         v.Line,
					}
				}
				slog.Warn("skipping vote for undeclared topic",
					"creator", msg.Creator, "topic", v.Topic,
					"message", msg.Index, "line", v.Line)
				continue
			}
			voted[v.Topic] = true
			rows = append(rows, models.ResultRow{
				CreatorName: msg.Creator,
				TopicNumber: v.Topic,
				Votes:       v.Votes,
				Subject:     subject,
			})
		}

		if opts.IncludeUnvoted {
			seen := make(map[int]bool, len(msg.Declarations))
			for _, decl := range msg.Declarations {
				if voted[decl.Number] || seen[decl.Number] {
					continue
				}
				seen[decl.Number] = true
				rows = append(rows, models.ResultRow{
					CreatorName: msg.Creator,
					TopicNumber: decl.Number,
					Votes:       0,
					Subject:     subjects[decl.Number],
				})
			}
		}
	}
	return rows, nil
}

// dedupeVotes collapses repeated votes for the same topic within one
// message. The surviving entry keeps the position of the first occurrence
// and the count of the last one.
func dedupeVotes(votes []models.VoteEntry) []models.VoteEntry {
	if len(votes) < 2 {
		return votes
	}
	out := make([]models.VoteEntry, 0, len(votes))
	index := make(map[int]int, len(votes))
	for _, v := range votes {
		if at, ok := index[v.Topic]; ok {
			slog.Debug("overriding duplicate vote", "topic", v.Topic, "line", v.Line)
			out[at].Votes = v.Votes
			out[at].Line = v.Line
			continue
		}
		index[v.Topic] = len(out)
		out = append(out, v)
	}
	return out
}
