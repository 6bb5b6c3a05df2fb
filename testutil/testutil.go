// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import "strings"

// Message builds one message block: creator line, timestamp line, then
// the given body lines in order.
func Message(creator, timestamp string, body ...string) string {
	lines := append([]string{creator, timestamp}, body...)
	return strings.Join(lines, "\n")
}

// Input joins message blocks with a blank line, the way the chat exports
// separate messages, and ends with a trailing newline.
func Input(blocks ...string) string {
	return strings.Join(blocks, "\n\n") + "\n"
}

// Sample is a small realistic export: two creators with overlapping topic
// numbers, so per-message scoping is exercised end to end.
const Sample = `Alice Johnson
10:32 AM
1-Team lunch at the taqueria
2-Board game night
:1:
4
:2:
2

Bob Smith
10:45 AM
1-Karaoke on Friday
:1:
7
`
