// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package parser turns raw messages-file text into structured messages.

# Input Grammar

A message is four parts, in order:

	Alice Johnson          <- creator name (any non-blank line)
	10:32 AM               <- timestamp (stored verbatim, never parsed)
	1-Team lunch spot      <- topic declarations: ^(\d+)-(.*)$
	2-Board game night
	:1:                    <- vote entries: ^:(\d+):$ then an integer line
	4
	:2:
	2

The subject is everything after the first "-", trimmed; it may be empty
and may itself contain "-". Topic numbers and vote counts are
non-negative base-10 integers.

# State Machine

Parse is a single sequential pass; there is no block pre-splitting:

	EXPECT_NAME -> EXPECT_TIMESTAMP -> COLLECT_DECLARATIONS -> COLLECT_VOTES

COLLECT_VOTES loops back to EXPECT_NAME when a blank-line run is followed
by a line that is neither a vote marker nor a declaration. That rule is
what keeps blank lines inside the vote section (or between declarations
and votes) from splitting a message in two. Declarations that appear
after voting has started still attach to the current message, so a vote
may resolve against a declaration written below it.

# Errors

Two error types, both usable with errors.As:

  - ParseError: a line violating the grammar (unrecognized topic line,
    non-integer vote count, marker without a count). Carries the line
    number and the offending text.
  - FormatError: input ends before a started message has its timestamp.

By default any ParseError fails the whole run; with Options.Lenient the
offending lines are skipped and logged at warning level instead.
FormatError is always fatal.
*/
package parser
