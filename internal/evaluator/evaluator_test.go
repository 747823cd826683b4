package evaluator

import (
	"context"
	"errors"
	"testing"
)

// fakeCompleter returns a fixed response or error.
type fakeCompleter struct {
	response string
	err      error
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return f.response, f.err
}

func TestEvaluateParsesModelOutput(t *testing.T) {
	e := New(&fakeCompleter{response: `{"score": 8, "feedback": "Strong answer with concrete examples."}`})

	result := e.Evaluate(context.Background(), "Tell me about yourself.", "I led a team of five.")
	if result.Score != 8 {
		t.Errorf("score = %d, want 8", result.Score)
	}
	if result.Feedback != "Strong answer with concrete examples." {
		t.Errorf("unexpected feedback: %q", result.Feedback)
	}
}

func TestEvaluateSubstitutesMissingFields(t *testing.T) {
	t.Run("missing score", func(t *testing.T) {
		e := New(&fakeCompleter{response: `{"feedback": "Decent."}`})
		result := e.Evaluate(context.Background(), "Q", "A")
		if result.Score != 6 {
			t.Errorf("score = %d, want default 6", result.Score)
		}
		if result.Feedback != "Decent." {
			t.Errorf("unexpected feedback: %q", result.Feedback)
		}
	})

	t.Run("missing feedback", func(t *testing.T) {
		e := New(&fakeCompleter{response: `{"score": 4}`})
		result := e.Evaluate(context.Background(), "Q", "A")
		if result.Score != 4 {
			t.Errorf("score = %d, want 4", result.Score)
		}
		if result.Feedback == "" {
			t.Error("expected a default feedback string")
		}
	})
}

func TestEvaluateDegradesOnUnparseableOutput(t *testing.T) {
	e := New(&fakeCompleter{response: "I would rate this answer quite highly."})

	result := e.Evaluate(context.Background(), "Q", "A")
	if result.Score != 6 {
		t.Errorf("score = %d, want degraded 6", result.Score)
	}
	if result.Feedback == "" {
		t.Error("expected degraded feedback text")
	}
}

func TestEvaluateDegradesOnCallFailure(t *testing.T) {
	e := New(&fakeCompleter{err: errors.New("connection timed out")})

	result := e.Evaluate(context.Background(), "Q", "A")
	if result.Score != 5 {
		t.Errorf("score = %d, want degraded 5", result.Score)
	}
	if result.Feedback == "" {
		t.Error("expected degraded feedback text")
	}
}

func TestEvaluateClampsOutOfRangeScores(t *testing.T) {
	tests := []struct {
		response string
		want     int
	}{
		{`{"score": 15, "feedback": "x"}`, 10},
		{`{"score": -3, "feedback": "x"}`, 0},
		{`{"score": 0, "feedback": "x"}`, 0},
		{`{"score": 10, "feedback": "x"}`, 10},
	}

	for _, tt := range tests {
		e := New(&fakeCompleter{response: tt.response})
		result := e.Evaluate(context.Background(), "Q", "A")
		if result.Score != tt.want {
			t.Errorf("response %s: score = %d, want %d", tt.response, result.Score, tt.want)
		}
	}
}

func TestEvaluateScoreAlwaysInRange(t *testing.T) {
	responses := []string{
		`{"score": 7, "feedback": "fine"}`,
		`{"score": 100}`,
		`not json at all`,
		``,
		`{"feedback": "no score"}`,
	}
	answers := []string{"", "short", "a perfectly ordinary answer"}

	for _, response := range responses {
		for _, answer := range answers {
			e := New(&fakeCompleter{response: response})
			result := e.Evaluate(context.Background(), "Q", answer)
			if result.Score < 0 || result.Score > 10 {
				t.Errorf("response %q answer %q: score %d out of [0,10]", response, answer, result.Score)
			}
		}
	}
}
