package question

import "strings"

// Category guidance strings used to steer question generation. This is a
// closed mapping; unknown categories resolve to "general".
var categoryHints = map[string]string{
	"communication": "Focus on behavioral and communication scenarios, STAR-style prompts, teamwork, conflict resolution, stakeholder communication.",
	"technical":     "Focus on systems, web/backend fundamentals, databases, REST/GraphQL, OS/networking basics, CS concepts relevant to software engineering interviews.",
	"coding":        "Focus on DSA coding interview style (arrays, strings, hash maps, two pointers, sliding window, trees, graphs, DP). Avoid language-specific boilerplate.",
	"personality":   "Focus on personality, values, motivation, leadership, growth mindset, self-awareness, and culture fit.",
	"general":       "Mix of common campus placement interview questions for engineering graduates: light technical fundamentals, communication, situational judgement, career intent.",
}

// NormalizeCategory lowercases the category and maps anything outside the
// known set to "general".
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if _, ok := categoryHints[c]; !ok {
		return "general"
	}
	return c
}

func hintFor(category string) string {
	if hint, ok := categoryHints[category]; ok {
		return hint
	}
	return categoryHints["general"]
}
