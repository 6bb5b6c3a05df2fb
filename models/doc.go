// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared across the pipeline.

# Parsed Input Types

Types the parser produces from the messages file:

  - Message: one voter submission (creator, timestamp, declarations, votes)
  - TopicDeclaration: a "N-subject" line scoped to its message
  - VoteEntry: a ":N:" marker plus its integer count line

All three carry their source line numbers so that warnings and errors can
point back into the input file.

# Derived Output Types

Types the aggregator and reporter produce:

  - ResultRow: the flattened (creator, topic, votes, subject) output unit
  - SummaryStats: totals for the console summary
  - Col* constants: the CSV column names, in output order

# Scoping

Topic numbers are scoped per message. Two creators can both declare topic
1 and the rows stay independent; nothing is merged across messages.
SummaryStats.Topics therefore counts distinct (creator, topic number)
pairs rather than distinct numbers.

# Lifecycle

All entities are transient: built during one run, held in memory, and
discarded after the CSV report is written.
*/
package models
