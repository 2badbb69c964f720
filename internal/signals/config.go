package signals

// Config holds pacing and struggle thresholds. Like the affect weights,
// these are tuned by hand and deliberately adjustable.
type Config struct {
	// FastMaxLen: average user message length below this reads as a
	// fast pace.
	FastMaxLen int

	// SlowMinLen: average user message length above this reads as a
	// slow pace.
	SlowMinLen int

	// MinMessages is how many user messages the pace inference needs;
	// below it the pace defaults to normal.
	MinMessages int

	// MaxRecentSummaries caps how many prior session summaries are
	// loaded.
	MaxRecentSummaries int

	// HighStruggleAttempts is the wrong-attempt count at which a
	// concept counts as a high-struggle concept.
	HighStruggleAttempts int
}

// DefaultConfig returns the standard aggregation parameters.
func DefaultConfig() Config {
	return Config{
		FastMaxLen:           30,
		SlowMinLen:           150,
		MinMessages:          3,
		MaxRecentSummaries:   3,
		HighStruggleAttempts: 3,
	}
}
