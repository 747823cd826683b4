package llm

import (
	"errors"
	"testing"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  bool
	}{
		{
			name:     "plain object",
			response: `{"score": 7, "feedback": "good"}`,
			want:     `{"score": 7, "feedback": "good"}`,
		},
		{
			name:     "object with surrounding text",
			response: "Here is my evaluation:\n{\"score\": 5, \"feedback\": \"ok\"}\nHope that helps!",
			want:     `{"score": 5, "feedback": "ok"}`,
		},
		{
			name:     "markdown fenced object",
			response: "```json\n{\"score\": 9, \"feedback\": \"great\"}\n```",
			want:     `{"score": 9, "feedback": "great"}`,
		},
		{
			name:     "no braces",
			response: "I cannot produce JSON for this request.",
			wantErr:  true,
		},
		{
			name:     "braces but invalid JSON",
			response: `{score: seven}`,
			wantErr:  true,
		},
		{
			name:     "empty response",
			response: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.response)
			if tt.wantErr {
				if !errors.Is(err, ErrNoJSON) {
					t.Fatalf("expected ErrNoJSON, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractArray(t *testing.T) {
	response := "Sure! Here are the questions:\n[{\"questionText\":\"Q1\"},{\"questionText\":\"Q2\"}]"
	got, err := ExtractArray(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"questionText":"Q1"},{"questionText":"Q2"}]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := ExtractArray("no array here"); !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON for response without array, got %v", err)
	}
}

func TestExtractArrayObjectMismatch(t *testing.T) {
	// An object response must not satisfy an array extraction.
	if _, err := ExtractArray(`{"questionText":"Q1"}`); !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON when only an object is present, got %v", err)
	}
}
