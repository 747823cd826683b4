package resume

import "strings"

// Keywords an applicant-tracking system commonly screens for.
var atsKeywords = []string{
	"experience", "skills", "education", "work", "project", "team", "management",
	"leadership", "communication", "problem-solving", "analytical", "technical",
}

// ATSScore returns a compatibility score in [0,100] plus the keywords that
// matched, based on keyword coverage of the resume text.
func ATSScore(resumeText string) (float64, []string) {
	words := strings.Fields(strings.ToLower(resumeText))

	var matched []string
	for _, keyword := range atsKeywords {
		for _, word := range words {
			if strings.Contains(word, keyword) {
				matched = append(matched, keyword)
				break
			}
		}
	}

	score := float64(len(matched)) / float64(len(atsKeywords)) * 100
	if score > 100 {
		score = 100
	}
	return score, matched
}
