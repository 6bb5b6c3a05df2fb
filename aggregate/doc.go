// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package aggregate flattens parsed messages into result rows.
//
// # Scoping
//
// Topic numbers only mean something inside their own message. Two messages
// may both declare topic 1 with different subjects, and each vote resolves
// against the declarations of the message it appears in. Flatten therefore
// never merges rows across messages.
//
// # Duplicate Handling
//
// Within a single message, a re-declared topic number takes the subject of
// its last declaration, and a re-voted topic takes the count of its last
// vote while keeping the position of the first. Both overrides are logged
// at debug level.
//
// # Unresolved Votes
//
// A vote whose topic number was never declared in its message cannot be
// resolved to a subject. By default such votes are logged and skipped so
// one stray line does not sink a whole report; Options.Strict upgrades
// them to an UnresolvedTopicError identifying the message, creator, line,
// and topic.
package aggregate
