package affect

// Config holds detection weights and thresholds. The defaults are
// hand-tuned rather than empirically derived, which is exactly why they
// live here instead of being hardcoded in the detector.
type Config struct {
	// KeywordWeight is added once when any frustration phrase matches.
	KeywordWeight float64

	// RepetitionWeight is added once when the message heavily overlaps
	// a recent user message.
	RepetitionWeight float64

	// RepetitionOverlap is the word-set overlap ratio above which a
	// message counts as a repetition.
	RepetitionOverlap float64

	// HistoryWindow is how many prior user messages to compare against.
	HistoryWindow int

	// AbruptWeight is added for a very short reply to a long
	// assistant message.
	AbruptWeight float64

	// AbruptAssistantMinLen is the minimum length of the preceding
	// assistant message for the abrupt-reply check.
	AbruptAssistantMinLen int

	// AbruptReplyMaxLen is the maximum current-message length for the
	// abrupt-reply check.
	AbruptReplyMaxLen int

	// CapsWeight is added when the message is mostly uppercase.
	CapsWeight float64

	// CapsRatio is the uppercase-to-letters ratio above which a message
	// counts as shouting.
	CapsRatio float64

	// CapsMinLen is the minimum message length for the shouting check;
	// shorter messages never trigger it.
	CapsMinLen int

	// QuestionMarksWeight is added at QuestionMarksMin or more literal
	// question marks.
	QuestionMarksWeight float64
	QuestionMarksMin    int

	// MildThreshold and HighThreshold split the score into
	// none / mild / high levels.
	MildThreshold float64
	HighThreshold float64
}

// DefaultConfig returns the standard detection parameters.
func DefaultConfig() Config {
	return Config{
		KeywordWeight:         0.30,
		RepetitionWeight:      0.25,
		RepetitionOverlap:     0.5,
		HistoryWindow:         3,
		AbruptWeight:          0.15,
		AbruptAssistantMinLen: 100,
		AbruptReplyMaxLen:     10,
		CapsWeight:            0.10,
		CapsRatio:             0.5,
		CapsMinLen:            5,
		QuestionMarksWeight:   0.10,
		QuestionMarksMin:      2,
		MildThreshold:         0.2,
		HighThreshold:         0.5,
	}
}
