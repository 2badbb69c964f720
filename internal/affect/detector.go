// Package affect scores a single chat message for frustration signals.
// Detection is a pure function of the message and a short turn history;
// nothing here performs I/O.
package affect

import (
	"regexp"
	"strings"
	"unicode"
)

// Level buckets the frustration score.
type Level string

const (
	LevelNone Level = "none"
	LevelMild Level = "mild"
	LevelHigh Level = "high"
)

// Signal names reported in Result.Signals.
const (
	SignalKeyword       = "frustration_keyword"
	SignalRepetition    = "repetition"
	SignalAbruptReply   = "abrupt_short_reply"
	SignalAllCaps       = "all_caps"
	SignalQuestionMarks = "multiple_question_marks"
)

// Role identifies the sender of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one prior message in the conversation, most recent last.
type Turn struct {
	Role    Role
	Content string
}

// Result is the outcome of scoring one message. Computed fresh per
// message; only Score and Level are ever persisted.
type Result struct {
	Score       float64
	Level       Level
	Signals     []string
	HasQuestion bool
	Length      int
}

// frustrationPatterns are the fixed phrase matchers. The "doesn't ...
// work" form tolerates one intervening word ("why doesn't this work").
var frustrationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)i\s+don'?t\s+(get|understand)`),
	regexp.MustCompile(`(?i)i'?m\s+(stuck|confused|lost)`),
	regexp.MustCompile(`(?i)doesn'?t\s+(\w+\s+)?(make\s+sense|work)`),
	regexp.MustCompile(`(?i)i\s+give\s+up`),
	regexp.MustCompile(`(?i)nothing\s+works`),
}

// Detect scores message against the fixed signal checks. The checks are
// independent and additive; each contributes at most once. history is
// the conversation so far, most recent turn last, excluding message.
func Detect(cfg Config, message string, history []Turn) Result {
	res := Result{
		HasQuestion: strings.Contains(message, "?"),
		Length:      len(message),
	}

	if matchesFrustrationPhrase(message) {
		res.Score += cfg.KeywordWeight
		res.Signals = append(res.Signals, SignalKeyword)
	}

	if hasRepetition(cfg, message, history) {
		res.Score += cfg.RepetitionWeight
		res.Signals = append(res.Signals, SignalRepetition)
	}

	if isAbruptReply(cfg, message, history) {
		res.Score += cfg.AbruptWeight
		res.Signals = append(res.Signals, SignalAbruptReply)
	}

	if isShouting(cfg, message) {
		res.Score += cfg.CapsWeight
		res.Signals = append(res.Signals, SignalAllCaps)
	}

	if strings.Count(message, "?") >= cfg.QuestionMarksMin {
		res.Score += cfg.QuestionMarksWeight
		res.Signals = append(res.Signals, SignalQuestionMarks)
	}

	if res.Score > 1 {
		res.Score = 1
	}

	switch {
	case res.Score >= cfg.HighThreshold:
		res.Level = LevelHigh
	case res.Score >= cfg.MildThreshold:
		res.Level = LevelMild
	default:
		res.Level = LevelNone
	}

	return res
}

func matchesFrustrationPhrase(message string) bool {
	for _, p := range frustrationPatterns {
		if p.MatchString(message) {
			return true
		}
	}
	return false
}

// hasRepetition compares the message word set against each of the last
// HistoryWindow user messages. Overlap is |intersection| / max(|A|,|B|).
func hasRepetition(cfg Config, message string, history []Turn) bool {
	current := wordSet(message)
	if len(current) == 0 {
		return false
	}

	compared := 0
	for i := len(history) - 1; i >= 0 && compared < cfg.HistoryWindow; i-- {
		if history[i].Role != RoleUser {
			continue
		}
		compared++

		prev := wordSet(history[i].Content)
		if len(prev) == 0 {
			continue
		}

		shared := 0
		for w := range current {
			if prev[w] {
				shared++
			}
		}
		denom := len(current)
		if len(prev) > denom {
			denom = len(prev)
		}
		if float64(shared)/float64(denom) > cfg.RepetitionOverlap {
			return true
		}
	}
	return false
}

// wordSet lower-cases, strips non-alphanumerics and keeps words longer
// than two characters.
func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, raw := range strings.Fields(strings.ToLower(s)) {
		var b strings.Builder
		for _, r := range raw {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if w := b.String(); len(w) > 2 {
			set[w] = true
		}
	}
	return set
}

func isAbruptReply(cfg Config, message string, history []Turn) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	return last.Role == RoleAssistant &&
		len(last.Content) > cfg.AbruptAssistantMinLen &&
		len(message) < cfg.AbruptReplyMaxLen
}

func isShouting(cfg Config, message string) bool {
	if len(message) <= cfg.CapsMinLen {
		return false
	}
	var upper, letters int
	for _, r := range message {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	return float64(upper)/float64(letters) > cfg.CapsRatio
}
