package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/llm"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/middleware"
)

// Degraded results substituted when the model cannot score an answer. An
// evaluation failure must never stop the interview from advancing.
const (
	degradedScoreUnparseable = 6
	degradedScoreCallFailed  = 5

	defaultFeedback  = "Thank you for your response. Keep practicing with specific examples and measurable outcomes."
	degradedFeedback = "Automatic evaluation was unavailable for this answer, so a provisional score was assigned. Your answer has been recorded."
)

// Result is the evaluator output for one answer.
type Result struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Scorer turns a question and an answer into a score and feedback. Both the
// AI-backed Evaluator and the deterministic Heuristic satisfy it.
type Scorer interface {
	Evaluate(ctx context.Context, questionText, answerText string) Result
}

// Evaluator scores answers with the generative model and degrades to a fixed
// result when the call fails or its output cannot be parsed.
type Evaluator struct {
	completer llm.Completer
}

func New(completer llm.Completer) *Evaluator {
	return &Evaluator{completer: completer}
}

// Evaluate never returns an error: any model failure is absorbed into a
// degraded result so the session can always advance.
func (e *Evaluator) Evaluate(ctx context.Context, questionText, answerText string) Result {
	prompt := fmt.Sprintf(llm.EvaluationPrompt, questionText, answerText)

	start := time.Now()
	response, err := e.completer.Complete(ctx, llm.EvaluationSystemPrompt, prompt)
	middleware.RecordLLMCall("evaluate", err == nil, time.Since(start))
	if err != nil {
		log.Printf("Answer evaluation call failed, using degraded result: %v", err)
		middleware.RecordAnswerScored("degraded")
		return Result{Score: degradedScoreCallFailed, Feedback: degradedFeedback}
	}

	jsonStr, err := llm.ExtractObject(response)
	if err != nil {
		log.Printf("Answer evaluation returned unparseable output, using degraded result")
		middleware.RecordAnswerScored("degraded")
		return Result{Score: degradedScoreUnparseable, Feedback: degradedFeedback}
	}

	var parsed struct {
		Score    *int   `json:"score"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		log.Printf("Answer evaluation JSON did not match expected shape, using degraded result")
		middleware.RecordAnswerScored("degraded")
		return Result{Score: degradedScoreUnparseable, Feedback: degradedFeedback}
	}

	result := Result{Score: degradedScoreUnparseable, Feedback: parsed.Feedback}
	if parsed.Score != nil {
		result.Score = clampScore(*parsed.Score)
	}
	if result.Feedback == "" {
		result.Feedback = defaultFeedback
	}

	middleware.RecordAnswerScored("ai")
	return result
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
