package evaluator

import (
	"context"
	"regexp"
	"strings"

	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/middleware"
)

// Heuristic is the Scorer used when no generative model is configured.
type Heuristic struct{}

func (Heuristic) Evaluate(_ context.Context, questionText, answerText string) Result {
	middleware.RecordAnswerScored("heuristic")
	return EvaluateHeuristic(questionText, answerText)
}

var (
	examplePattern      = regexp.MustCompile(`(?i)example|instance|time when|situation|experience`)
	quantifiablePattern = regexp.MustCompile(`(?i)\d+%|\$\d+|increased|decreased|improved|reduced`)
)

// EvaluateHeuristic is the deterministic, policy-free reference evaluator:
// a base score adjusted by answer length, concrete examples and quantifiable
// results, clamped to [0,10].
func EvaluateHeuristic(questionText, answerText string) Result {
	answerLength := len(strings.TrimSpace(answerText))
	hasExamples := examplePattern.MatchString(answerText)
	hasQuantifiable := quantifiablePattern.MatchString(answerText)

	score := 5
	var feedback strings.Builder
	feedback.WriteString("Thank you for your response. ")

	if answerLength < 50 {
		score = 3
		feedback.WriteString("Your answer could benefit from more detail and specific examples. ")
	} else if answerLength > 200 {
		score += 2
		feedback.WriteString("Good level of detail in your response. ")
	}

	if hasExamples {
		score += 2
		feedback.WriteString("Great use of specific examples to illustrate your points. ")
	} else {
		feedback.WriteString("Consider adding specific examples to strengthen your answer. ")
	}

	if hasQuantifiable {
		score += 1
		feedback.WriteString("Excellent use of quantifiable results to demonstrate impact. ")
	}

	score = clampScore(score)

	switch {
	case score >= 8:
		feedback.WriteString("This is a strong response that demonstrates good self-awareness and communication skills.")
	case score >= 6:
		feedback.WriteString("This is a solid response with room for improvement in providing more specific details.")
	default:
		feedback.WriteString("Consider expanding your answer with more specific examples and details about your experience.")
	}

	return Result{Score: score, Feedback: feedback.String()}
}
