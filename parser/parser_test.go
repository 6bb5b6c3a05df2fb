// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package parser

import (
	"errors"
	"testing"

	"github.com/danielhkuo/votetally/models"
	"github.com/danielhkuo/votetally/testutil"
)

func TestParseSingleMessage(t *testing.T) {
	input := testutil.Message(
		"Alice Johnson",
		"10:32 AM",
		"1-Team lunch at the taqueria",
		"2-Board game night",
		":1:",
		"4",
		":2:",
		"2",
	)

	messages, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	msg := messages[0]
	if msg.Creator != "Alice Johnson" {
		t.Errorf("Expected creator %q, got %q", "Alice Johnson", msg.Creator)
	}
	if msg.Timestamp != "10:32 AM" {
		t.Errorf("Expected timestamp %q, got %q", "10:32 AM", msg.Timestamp)
	}
	if msg.Index != 1 {
		t.Errorf("Expected message index 1, got %d", msg.Index)
	}
	if msg.Line != 1 {
		t.Errorf("Expected message to start at line 1, got %d", msg.Line)
	}

	wantDecls := []models.TopicDeclaration{
		{Number: 1, Subject: "Team lunch at the taqueria", Line: 3},
		{Number: 2, Subject: "Board game night", Line: 4},
	}
	if len(msg.Declarations) != len(wantDecls) {
		t.Fatalf("Expected %d declarations, got %d", len(wantDecls), len(msg.Declarations))
	}
	for i, want := range wantDecls {
		if msg.Declarations[i] != want {
			t.Errorf("Declaration %d: expected %+v, got %+v", i, want, msg.Declarations[i])
		}
	}

	wantVotes := []models.VoteEntry{
		{Topic: 1, Votes: 4, Line: 5},
		{Topic: 2, Votes: 2, Line: 7},
	}
	if len(msg.Votes) != len(wantVotes) {
		t.Fatalf("Expected %d votes, got %d", len(wantVotes), len(msg.Votes))
	}
	for i, want := range wantVotes {
		if msg.Votes[i] != want {
			t.Errorf("Vote %d: expected %+v, got %+v", i, want, msg.Votes[i])
		}
	}
}

func TestParseMultipleMessages(t *testing.T) {
	messages, err := Parse(testutil.Sample, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}

	if messages[0].Creator != "Alice Johnson" || messages[1].Creator != "Bob Smith" {
		t.Errorf("Expected creators in file order, got %q then %q",
			messages[0].Creator, messages[1].Creator)
	}
	if messages[1].Index != 2 {
		t.Errorf("Expected second message index 2, got %d", messages[1].Index)
	}
	if messages[1].Line != 10 {
		t.Errorf("Expected second message at line 10, got %d", messages[1].Line)
	}

	// Topic 1 exists in both messages; the parser keeps them separate.
	bob := messages[1]
	if len(bob.Declarations) != 1 || bob.Declarations[0].Subject != "Karaoke on Friday" {
		t.Errorf("Unexpected declarations for second message: %+v", bob.Declarations)
	}
	if len(bob.Votes) != 1 || bob.Votes[0] != (models.VoteEntry{Topic: 1, Votes: 7, Line: 13}) {
		t.Errorf("Unexpected votes for second message: %+v", bob.Votes)
	}
}

func TestParseBlankLinesInsideVoteSection(t *testing.T) {
	input := "Alice\n" +
		"10:32 AM\n" +
		"1-Pizza\n" +
		"\n" +
		":1:\n" +
		"\n" +
		"5\n" +
		"\n" +
		":1:\n" +
		"7\n"

	messages, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Blank lines inside the vote section must not split the message, got %d messages", len(messages))
	}

	// Both entries survive parsing; collapsing repeats is the aggregator's job.
	votes := messages[0].Votes
	if len(votes) != 2 {
		t.Fatalf("Expected 2 vote entries, got %d", len(votes))
	}
	if votes[0] != (models.VoteEntry{Topic: 1, Votes: 5, Line: 5}) {
		t.Errorf("Unexpected first vote: %+v", votes[0])
	}
	if votes[1] != (models.VoteEntry{Topic: 1, Votes: 7, Line: 9}) {
		t.Errorf("Unexpected second vote: %+v", votes[1])
	}
}

func TestParseDeclarationsOnlyMessage(t *testing.T) {
	input := testutil.Input(
		testutil.Message("Alice", "10:00 AM", "1-Quiet Friday"),
		testutil.Message("Bob", "10:05 AM", "1-Loud Friday", ":1:", "3"),
	)

	messages, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if len(messages[0].Votes) != 0 {
		t.Errorf("Expected no votes in first message, got %+v", messages[0].Votes)
	}
	if len(messages[0].Declarations) != 1 {
		t.Errorf("Expected 1 declaration in first message, got %d", len(messages[0].Declarations))
	}
	if len(messages[1].Votes) != 1 {
		t.Errorf("Expected 1 vote in second message, got %d", len(messages[1].Votes))
	}
}

func TestParseLateDeclaration(t *testing.T) {
	input := "Alice\n" +
		"10:00 AM\n" +
		"1-Pizza\n" +
		":1:\n" +
		"5\n" +
		"\n" +
		"2-Burgers\n" +
		":2:\n" +
		"8\n"

	messages, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("A declaration after voting started must stay in the same message, got %d messages", len(messages))
	}

	msg := messages[0]
	if len(msg.Declarations) != 2 {
		t.Fatalf("Expected 2 declarations, got %d", len(msg.Declarations))
	}
	if msg.Declarations[1] != (models.TopicDeclaration{Number: 2, Subject: "Burgers", Line: 7}) {
		t.Errorf("Unexpected late declaration: %+v", msg.Declarations[1])
	}
	if len(msg.Votes) != 2 || msg.Votes[1] != (models.VoteEntry{Topic: 2, Votes: 8, Line: 8}) {
		t.Errorf("Unexpected votes: %+v", msg.Votes)
	}
}

func TestParseSubjectFormats(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantNumber  int
		wantSubject string
	}{
		{"plain", "1-Pizza night", 1, "Pizza night"},
		{"padded", "2-  padded subject  ", 2, "padded subject"},
		{"empty subject", "3-", 3, ""},
		{"dashes in subject", "10-mid-week-option", 10, "mid-week-option"},
		{"leading zeros", "007-leading zeros", 7, "leading zeros"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testutil.Message("Alice", "10:00 AM", tt.line)
			messages, err := Parse(input, Options{})
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(messages) != 1 || len(messages[0].Declarations) != 1 {
				t.Fatalf("Expected 1 message with 1 declaration, got %+v", messages)
			}
			decl := messages[0].Declarations[0]
			if decl.Number != tt.wantNumber {
				t.Errorf("Expected topic number %d, got %d", tt.wantNumber, decl.Number)
			}
			if decl.Subject != tt.wantSubject {
				t.Errorf("Expected subject %q, got %q", tt.wantSubject, decl.Subject)
			}
		})
	}
}

func TestParseTimestampVerbatim(t *testing.T) {
	input := testutil.Message("Bob", "whenever o'clock", "1-Coffee run", ":1:", "1")

	messages, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if messages[0].Timestamp != "whenever o'clock" {
		t.Errorf("Timestamps must be stored verbatim, got %q", messages[0].Timestamp)
	}
}

func TestParseToleratedBlankLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"leading blanks", "\n\n" + testutil.Message("Alice", "10:00 AM", "1-Pizza", ":1:", "2")},
		{"blank after name", "Alice\n\n10:00 AM\n1-Pizza\n:1:\n2\n"},
		{"blank after timestamp", "Alice\n10:00 AM\n\n1-Pizza\n:1:\n2\n"},
		{"trailing blanks", testutil.Message("Alice", "10:00 AM", "1-Pizza", ":1:", "2") + "\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, err := Parse(tt.input, Options{})
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(messages) != 1 {
				t.Fatalf("Expected 1 message, got %d", len(messages))
			}
			msg := messages[0]
			if msg.Creator != "Alice" {
				t.Errorf("Expected creator Alice, got %q", msg.Creator)
			}
			if len(msg.Declarations) != 1 || len(msg.Votes) != 1 {
				t.Errorf("Expected 1 declaration and 1 vote, got %+v", msg)
			}
			if msg.Votes[0].Votes != 2 {
				t.Errorf("Expected vote count 2, got %d", msg.Votes[0].Votes)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLine   int
		wantReason string
	}{
		{
			"unrecognized topic line",
			"Alice\n10:00 AM\nwhat is this\n",
			3,
			"unrecognized topic line",
		},
		{
			"non-integer vote count",
			"Alice\n10:00 AM\n1-Pizza\n:2:\nseven\n",
			5,
			"vote count for topic 2 is not a non-negative integer",
		},
		{
			"negative vote count",
			"Alice\n10:00 AM\n1-Pizza\n:1:\n-3\n",
			5,
			"vote count for topic 1 is not a non-negative integer",
		},
		{
			"marker at end of input",
			"Alice\n10:00 AM\n1-Pizza\n:1:\n",
			4,
			"vote marker without a count before end of input",
		},
		{
			"junk in vote section without blank separator",
			"Alice\n10:00 AM\n1-Pizza\n:1:\n5\nBob\n",
			6,
			"unexpected line in vote section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, Options{})
			if err == nil {
				t.Fatal("Expected a parse error, got nil")
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %T: %v", err, err)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("Expected error at line %d, got %d", tt.wantLine, perr.Line)
			}
			if perr.Reason != tt.wantReason {
				t.Errorf("Expected reason %q, got %q", tt.wantReason, perr.Reason)
			}
		})
	}
}

func TestParseTruncatedMessage(t *testing.T) {
	_, err := Parse("Ghost Writer\n", Options{})
	if err == nil {
		t.Fatal("Expected a format error for a name without a timestamp")
	}

	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected *FormatError, got %T: %v", err, err)
	}
	if ferr.Line != 1 {
		t.Errorf("Expected error to reference line 1, got %d", ferr.Line)
	}

	// Lenient mode only forgives line-level violations, not truncation.
	if _, err := Parse("Ghost Writer\n", Options{Lenient: true}); err == nil {
		t.Error("Expected truncated input to fail even in lenient mode")
	}
}

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only newlines", "\n\n\n"},
		{"only whitespace", "   \n\t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, err := Parse(tt.input, Options{})
			if err != nil {
				t.Fatalf("Parse failed on empty input: %v", err)
			}
			if len(messages) != 0 {
				t.Errorf("Expected no messages, got %d", len(messages))
			}
		})
	}
}

func TestParseLenientRecovery(t *testing.T) {
	input := "Alice\n" +
		"10:00 AM\n" +
		"1-Pizza\n" +
		"not a topic\n" +
		":1:\n" +
		"oops\n" +
		":2:\n" +
		"6\n"

	messages, err := Parse(input, Options{Lenient: true})
	if err != nil {
		t.Fatalf("Lenient parse failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	msg := messages[0]
	if len(msg.Declarations) != 1 || msg.Declarations[0].Number != 1 {
		t.Errorf("Expected only the valid declaration to survive, got %+v", msg.Declarations)
	}
	// The :1:/oops pair is dropped; the :2:/6 pair survives.
	if len(msg.Votes) != 1 || msg.Votes[0] != (models.VoteEntry{Topic: 2, Votes: 6, Line: 7}) {
		t.Errorf("Expected the valid vote pair to survive, got %+v", msg.Votes)
	}
}
