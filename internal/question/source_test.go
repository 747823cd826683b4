package question

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/model"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeCompleter struct {
	response string
	err      error
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return f.response, f.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.QuestionBankEntry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedBank(t *testing.T, db *gorm.DB, category string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		entry := model.QuestionBankEntry{
			ID:        uuid.NewString(),
			Category:  category,
			Question:  fmt.Sprintf("%s question %d", category, i),
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("failed to seed bank: %v", err)
		}
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultCount},
		{-1, DefaultCount},
		{1, MinCount},
		{3, 3},
		{6, 6},
		{12, 12},
		{50, MaxCount},
	}

	for _, tt := range tests {
		if got := ClampCount(tt.in); got != tt.want {
			t.Errorf("ClampCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"technical", "technical"},
		{"TECHNICAL", "technical"},
		{" coding ", "coding"},
		{"communication", "communication"},
		{"personality", "personality"},
		{"general", "general"},
		{"quantum-basket-weaving", "general"},
		{"", "general"},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateAIPath(t *testing.T) {
	response := `Sure, here you go:
[
  {"questionText": "Explain indexes."},
  {"questionText": "   "},
  {"questionText": "What is a race condition?"},
  {"questionText": "Describe the CAP theorem."},
  {"questionText": "Explain TLS handshakes."},
  {"questionText": "How do transactions isolate?"}
]`
	source := NewSource(newTestDB(t), &fakeCompleter{response: response}, nil)

	questions, from, err := source.Generate(context.Background(), "technical", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from != SourceAI {
		t.Errorf("source = %q, want %q", from, SourceAI)
	}
	if len(questions) != 4 {
		t.Fatalf("got %d questions, want 4", len(questions))
	}

	// Blank entries are discarded and order values are dense from 0.
	for i, q := range questions {
		if q.Order != i {
			t.Errorf("question %d has order %d", i, q.Order)
		}
		if q.QuestionText == "" {
			t.Errorf("question %d has empty text", i)
		}
		if q.Category != "technical" {
			t.Errorf("question %d has category %q", i, q.Category)
		}
	}
	if questions[1].QuestionText != "What is a race condition?" {
		t.Errorf("blank entry not skipped: %q", questions[1].QuestionText)
	}
}

func TestGenerateFallsBackOnCallFailure(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, "technical", 5)
	source := NewSource(db, &fakeCompleter{err: errors.New("quota exhausted")}, nil)

	questions, from, err := source.Generate(context.Background(), "technical", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from != SourceBank {
		t.Errorf("source = %q, want %q", from, SourceBank)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	for i, q := range questions {
		if q.Order != i {
			t.Errorf("question %d has order %d", i, q.Order)
		}
	}
}

func TestGenerateFallsBackOnUnparseableOutput(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, "general", 6)
	source := NewSource(db, &fakeCompleter{response: "I'd rather chat about the weather."}, nil)

	questions, from, err := source.Generate(context.Background(), "general", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from != SourceBank {
		t.Errorf("source = %q, want %q", from, SourceBank)
	}
	if len(questions) != 4 {
		t.Errorf("got %d questions, want 4", len(questions))
	}
}

func TestFallbackUsesUnfilteredPoolForEmptyCategory(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, "coding", 4)
	source := NewSource(db, &fakeCompleter{err: errors.New("down")}, nil)

	// No "personality" rows exist, so the unfiltered pool serves the request.
	questions, _, err := source.Generate(context.Background(), "personality", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	for _, q := range questions {
		if q.Category != "coding" {
			t.Errorf("expected pool rows to keep their own category, got %q", q.Category)
		}
	}
}

func TestFallbackEmptyPoolReturnsEmpty(t *testing.T) {
	source := NewSource(newTestDB(t), &fakeCompleter{err: errors.New("down")}, nil)

	questions, _, err := source.Generate(context.Background(), "general", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("expected empty result for empty pool, got %d questions", len(questions))
	}
}

func TestGenerateTruncatesToCount(t *testing.T) {
	var entries string
	for i := 0; i < 20; i++ {
		if i > 0 {
			entries += ","
		}
		entries += fmt.Sprintf(`{"questionText": "Question %d"}`, i)
	}
	source := NewSource(newTestDB(t), &fakeCompleter{response: "[" + entries + "]"}, nil)

	questions, _, err := source.Generate(context.Background(), "general", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 12 {
		t.Errorf("got %d questions, want 12", len(questions))
	}
}
