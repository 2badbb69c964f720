package affect

import (
	"slices"
	"strings"
	"testing"
)

func TestDetect_FrustrationKeywords(t *testing.T) {
	messages := []string{
		"I don't get it",
		"I don't understand this at all",
		"I'm stuck on this problem",
		"im confused",
		"I'm lost",
		"this doesn't make sense",
		"it doesn't work",
		"WHY DOESN'T THIS WORK",
		"I give up",
		"nothing works anymore",
	}

	for _, msg := range messages {
		res := Detect(DefaultConfig(), msg, nil)
		if res.Score < 0.30 {
			t.Errorf("Detect(%q).Score = %.2f, want >= 0.30", msg, res.Score)
		}
		if !slices.Contains(res.Signals, SignalKeyword) {
			t.Errorf("Detect(%q) missing %s signal, got %v", msg, SignalKeyword, res.Signals)
		}
	}
}

func TestDetect_NoSignals(t *testing.T) {
	res := Detect(DefaultConfig(), "can you explain closures again please", nil)
	if res.Score != 0 {
		t.Errorf("Score = %.2f, want 0", res.Score)
	}
	if res.Level != LevelNone {
		t.Errorf("Level = %s, want none", res.Level)
	}
	if len(res.Signals) != 0 {
		t.Errorf("Signals = %v, want empty", res.Signals)
	}
}

func TestDetect_AllCaps(t *testing.T) {
	res := Detect(DefaultConfig(), "HELP ME NOW", nil)
	if !slices.Contains(res.Signals, SignalAllCaps) {
		t.Errorf("missing %s signal, got %v", SignalAllCaps, res.Signals)
	}
}

func TestDetect_AllCaps_ShortMessagesExempt(t *testing.T) {
	// Messages of 5 chars or fewer never trigger shouting.
	for _, msg := range []string{"OK", "YES", "WHAT?"} {
		res := Detect(DefaultConfig(), msg, nil)
		if slices.Contains(res.Signals, SignalAllCaps) {
			t.Errorf("Detect(%q) triggered %s on a short message", msg, SignalAllCaps)
		}
	}
}

func TestDetect_MultipleQuestionMarks(t *testing.T) {
	res := Detect(DefaultConfig(), "what is going on here?? really??", nil)
	if !slices.Contains(res.Signals, SignalQuestionMarks) {
		t.Errorf("missing %s signal, got %v", SignalQuestionMarks, res.Signals)
	}

	single := Detect(DefaultConfig(), "what is a closure?", nil)
	if slices.Contains(single.Signals, SignalQuestionMarks) {
		t.Error("single question mark should not trigger")
	}
	if !single.HasQuestion {
		t.Error("HasQuestion = false, want true")
	}
}

func TestDetect_Repetition(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "how do for loops work in this language"},
		{Role: RoleAssistant, Content: "A for loop repeats a block of code..."},
	}
	res := Detect(DefaultConfig(), "how do for loops work in this language", history)
	if !slices.Contains(res.Signals, SignalRepetition) {
		t.Errorf("missing %s signal, got %v", SignalRepetition, res.Signals)
	}
}

func TestDetect_Repetition_OnlyComparesUserTurns(t *testing.T) {
	history := []Turn{
		{Role: RoleAssistant, Content: "loops repeat code blocks until done"},
	}
	res := Detect(DefaultConfig(), "loops repeat code blocks until done", history)
	if slices.Contains(res.Signals, SignalRepetition) {
		t.Error("repetition should not match assistant messages")
	}
}

func TestDetect_AbruptShortReply(t *testing.T) {
	longReply := strings.Repeat("Here is a thorough explanation. ", 5)
	history := []Turn{
		{Role: RoleUser, Content: "explain recursion"},
		{Role: RoleAssistant, Content: longReply},
	}

	res := Detect(DefaultConfig(), "ok", history)
	if !slices.Contains(res.Signals, SignalAbruptReply) {
		t.Errorf("missing %s signal, got %v", SignalAbruptReply, res.Signals)
	}

	// Preceding user message: no trigger.
	res = Detect(DefaultConfig(), "ok", []Turn{{Role: RoleUser, Content: longReply}})
	if slices.Contains(res.Signals, SignalAbruptReply) {
		t.Error("abrupt reply should require a preceding assistant message")
	}

	// Short assistant message: no trigger.
	res = Detect(DefaultConfig(), "ok", []Turn{{Role: RoleAssistant, Content: "Sure."}})
	if slices.Contains(res.Signals, SignalAbruptReply) {
		t.Error("abrupt reply should require a long assistant message")
	}
}

func TestDetect_HighFrustrationScenario(t *testing.T) {
	// all_caps + multiple_question_marks + "doesn't work" keyword.
	res := Detect(DefaultConfig(), "WHY DOESN'T THIS WORK??", nil)

	want := []string{SignalKeyword, SignalAllCaps, SignalQuestionMarks}
	for _, sig := range want {
		if !slices.Contains(res.Signals, sig) {
			t.Errorf("missing %s signal, got %v", sig, res.Signals)
		}
	}
	if res.Score < 0.50 {
		t.Errorf("Score = %.2f, want >= 0.50", res.Score)
	}
	if res.Level != LevelHigh {
		t.Errorf("Level = %s, want high", res.Level)
	}
}

func TestDetect_Levels(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		message string
		history []Turn
		want    Level
	}{
		{"calm", "tell me about maps", nil, LevelNone},
		{"keyword only is mild", "I'm stuck", nil, LevelMild},
		{"stacked signals are high", "I'M STUCK?? NOTHING WORKS??", nil, LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Detect(cfg, tt.message, tt.history)
			if res.Level != tt.want {
				t.Errorf("Level = %s (score %.2f), want %s", res.Level, res.Score, tt.want)
			}
		})
	}
}

func TestDetect_ScoreClamped(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "WHY DOESN'T THIS WORK?? I GIVE UP"},
		{Role: RoleAssistant, Content: strings.Repeat("Let's try breaking the problem down. ", 4)},
	}
	res := Detect(DefaultConfig(), "WHY DOESN'T THIS WORK?? I GIVE UP", history)
	if res.Score > 1 {
		t.Errorf("Score = %.2f, want <= 1", res.Score)
	}
}

func TestDetect_Pure(t *testing.T) {
	history := []Turn{{Role: RoleUser, Content: "same history"}}
	a := Detect(DefaultConfig(), "I'm confused??", history)
	b := Detect(DefaultConfig(), "I'm confused??", history)

	if a.Score != b.Score || a.Level != b.Level || !slices.Equal(a.Signals, b.Signals) {
		t.Errorf("Detect is not deterministic: %+v vs %+v", a, b)
	}
}

func TestWordSet(t *testing.T) {
	set := wordSet("The for-loop doesn't work!! IT broke")
	for _, want := range []string{"the", "forloop", "doesnt", "work", "broke"} {
		if !set[want] {
			t.Errorf("wordSet missing %q: %v", want, set)
		}
	}
	if set["it"] {
		t.Error("wordSet should drop words of 2 chars or fewer")
	}
}
