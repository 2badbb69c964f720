// Package summarize condenses chat sessions into compact recaps that
// later turns feed back into the system prompt as session memory.
package summarize

// Cadence parameters. The first summary fires once a session has enough
// substance to be worth recapping, then refreshes periodically so the
// stored recap tracks the conversation.
const (
	firstAt  = 6
	everyNth = 4
)

// ShouldSummarize reports whether a session with messageCount total
// messages is due for a (re-)summary: once at the sixth message, then
// every fourth message after that (10, 14, 18, ...).
func ShouldSummarize(messageCount int) bool {
	if messageCount < firstAt {
		return false
	}
	return messageCount == firstAt || (messageCount-firstAt)%everyNth == 0
}
