package models

// Parsed input types

// TopicDeclaration is one "N-subject" line inside a message. It defines
// what topic number N means within that message only; the same number can
// mean something else in another creator's message.
type TopicDeclaration struct {
	Number  int
	Subject string
	Line    int // source line number, for diagnostics
}

// VoteEntry records the votes cast for a topic number: a ":N:" marker
// line followed by an integer count line.
type VoteEntry struct {
	Topic int
	Votes int
	Line  int // marker line number, for diagnostics
}

// Message is one voter submission: name, timestamp, topic declarations,
// and vote tallies. Immutable once the parser returns it.
type Message struct {
	Creator      string
	Timestamp    string // verbatim from the input, never parsed as a time
	Declarations []TopicDeclaration
	Votes        []VoteEntry
	Index        int // 1-based position in the input file
	Line         int // line number of the creator name
}

// Derived output types

// CSV column names, in output order.
const (
	ColCreatorName = "creator_name"
	ColTopicNumber = "topic_number"
	ColVotes       = "votes"
	ColSubject     = "subject"
)

// ResultRow is the flattened output unit: one (creator, topic) pair with
// its vote count and the subject resolved from the same message's
// declarations.
type ResultRow struct {
	CreatorName string
	TopicNumber int
	Votes       int
	Subject     string
}

// SummaryStats aggregates a finished run for display. Topics counts
// distinct (creator, topic number) pairs, since topic numbers repeat
// across creators. Top is nil when the run produced no rows.
type SummaryStats struct {
	Messages   int
	Rows       int
	TotalVotes int
	Creators   int
	Topics     int
	Top        *ResultRow
}
