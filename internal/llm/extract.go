package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no usable JSON value can be located in a model
// response. Callers decide the fallback policy; extraction never does.
var ErrNoJSON = errors.New("no valid JSON found in response")

var (
	fenceOpen  = regexp.MustCompile("(?s)```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("(?s)```\\s*$")
)

func stripFences(response string) string {
	response = strings.TrimSpace(response)
	response = fenceOpen.ReplaceAllString(response, "")
	response = fenceClose.ReplaceAllString(response, "")
	return strings.TrimSpace(response)
}

// ExtractObject extracts the first brace-delimited JSON object from an LLM
// response that may contain extra text.
func ExtractObject(response string) (string, error) {
	return extract(stripFences(response), "{", "}")
}

// ExtractArray extracts the first bracket-delimited JSON array.
func ExtractArray(response string) (string, error) {
	return extract(stripFences(response), "[", "]")
}

func extract(response, opening, closing string) (string, error) {
	start := strings.Index(response, opening)
	end := strings.LastIndex(response, closing)

	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}

	jsonStr := response[start : end+1]

	// Validate it's valid JSON
	var js json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &js); err != nil {
		return "", ErrNoJSON
	}

	return jsonStr, nil
}
