package evaluator

import (
	"strings"
	"testing"
)

func TestHeuristicShortAnswer(t *testing.T) {
	// Short answer drops to 3; the word "experience" still earns the
	// anecdote bonus, landing at 5.
	result := EvaluateHeuristic("Tell me about your experience.", "I have no experience")

	if result.Score > 5 {
		t.Errorf("score = %d, want <= 5", result.Score)
	}
	if result.Score != 5 {
		t.Errorf("score = %d, want 5", result.Score)
	}
	if !strings.Contains(result.Feedback, "more detail") {
		t.Errorf("feedback should mention missing detail: %q", result.Feedback)
	}
}

func TestHeuristicShortAnswerNoPatterns(t *testing.T) {
	// Short, no anecdote or quantifiable patterns at all.
	result := EvaluateHeuristic("Q", "I do not know.")

	if result.Score != 3 {
		t.Errorf("score = %d, want 3", result.Score)
	}
}

func TestHeuristicDetailedAnswerWithExampleAndNumbers(t *testing.T) {
	// 250+ chars, contains "example" and "20%": 5+2+2+1 capped at 10.
	answer := strings.Repeat("In my previous role I shipped features on a tight schedule. ", 5) +
		"For example, I rewrote our reporting pipeline and reduced processing time by 20% for the whole team."

	if len(answer) <= 200 {
		t.Fatalf("test answer too short: %d chars", len(answer))
	}

	result := EvaluateHeuristic("Describe an achievement.", answer)
	if result.Score != 10 {
		t.Errorf("score = %d, want 10", result.Score)
	}
	if !strings.Contains(result.Feedback, "strong response") {
		t.Errorf("feedback should use the top tier closing: %q", result.Feedback)
	}
}

func TestHeuristicMidLengthAnswer(t *testing.T) {
	// Between 50 and 200 chars, no bonuses: stays at base 5.
	answer := "I am comfortable working in teams and enjoy solving difficult problems under pressure."
	result := EvaluateHeuristic("Q", answer)

	if result.Score != 5 {
		t.Errorf("score = %d, want 5", result.Score)
	}
	if !strings.Contains(result.Feedback, "expanding your answer") {
		t.Errorf("feedback should use the lowest tier closing: %q", result.Feedback)
	}
}

func TestHeuristicExampleBonus(t *testing.T) {
	answer := "There was a time when our deployment failed an hour before launch and I coordinated the rollback with two other teams."
	result := EvaluateHeuristic("Q", answer)

	// base 5 + 2 for the anecdote pattern
	if result.Score != 7 {
		t.Errorf("score = %d, want 7", result.Score)
	}
	if !strings.Contains(result.Feedback, "specific examples to illustrate") {
		t.Errorf("feedback should credit the example: %q", result.Feedback)
	}
}

func TestHeuristicScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"ok",
		strings.Repeat("example experience situation improved 100% $500 ", 20),
		strings.Repeat("x", 1000),
	}

	for _, answer := range inputs {
		result := EvaluateHeuristic("Q", answer)
		if result.Score < 0 || result.Score > 10 {
			t.Errorf("answer %q: score %d out of [0,10]", answer, result.Score)
		}
		if result.Feedback == "" {
			t.Errorf("answer %q: feedback must never be empty", answer)
		}
	}
}
