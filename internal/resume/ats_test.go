package resume

import "testing"

func TestATSScoreEmptyText(t *testing.T) {
	score, matched := ATSScore("")
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
	if len(matched) != 0 {
		t.Errorf("matched = %v, want none", matched)
	}
}

func TestATSScorePartialMatch(t *testing.T) {
	text := "Five years of experience leading a team on technical projects. Strong communication skills."
	score, matched := ATSScore(text)

	// experience, team, technical, project, communication, skills
	if len(matched) != 6 {
		t.Fatalf("matched %d keywords (%v), want 6", len(matched), matched)
	}
	want := float64(6) / 12 * 100
	if score != want {
		t.Errorf("score = %v, want %v", score, want)
	}
}

func TestATSScoreFullCoverage(t *testing.T) {
	text := "experience skills education work project team management leadership " +
		"communication problem-solving analytical technical"
	score, matched := ATSScore(text)

	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
	if len(matched) != len(atsKeywords) {
		t.Errorf("matched %d keywords, want %d", len(matched), len(atsKeywords))
	}
}

func TestATSScoreCaseInsensitive(t *testing.T) {
	_, matched := ATSScore("EXPERIENCE and Leadership")
	if len(matched) != 2 {
		t.Errorf("matched = %v, want experience and leadership", matched)
	}
}
