package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/config"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/database"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/model"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/question"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the question_bank table from a pipe-delimited file of
// "category|question" lines. The bank is the fallback pool used when AI
// question generation fails, so it should be populated before first deploy.
func main() {
	_ = godotenv.Load()

	filePath := flag.String("file", "data/questions.txt", "Path to question list file")
	batchSize := flag.Int("batch", 200, "Batch size for inserts")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	entries, err := loadQuestionList(*filePath)
	if err != nil {
		log.Fatalf("Failed to load question list: %v", err)
	}

	log.Printf("Loaded %d questions from %s", len(entries), *filePath)

	inserted, skipped := seedQuestions(db, entries, *batchSize)
	log.Printf("Seeding complete. Inserted: %d, skipped: %d", inserted, skipped)
}

func loadQuestionList(path string) ([]model.QuestionBankEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []model.QuestionBankEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		category, text, found := strings.Cut(line, "|")
		if !found || strings.TrimSpace(text) == "" {
			log.Printf("Skipping malformed line: %q", line)
			continue
		}

		entries = append(entries, model.QuestionBankEntry{
			ID:       uuid.NewString(),
			Category: question.NormalizeCategory(category),
			Question: strings.TrimSpace(text),
		})
	}

	return entries, scanner.Err()
}

func seedQuestions(db *gorm.DB, entries []model.QuestionBankEntry, batchSize int) (inserted, skipped int) {
	var existing []model.QuestionBankEntry
	if err := db.Select("category", "question").Find(&existing).Error; err != nil {
		log.Fatalf("Failed to read existing questions: %v", err)
	}

	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.Category+"|"+e.Question] = true
	}

	var toInsert []model.QuestionBankEntry
	for _, entry := range entries {
		key := entry.Category + "|" + entry.Question
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true
		toInsert = append(toInsert, entry)
	}

	if len(toInsert) > 0 {
		if err := db.CreateInBatches(toInsert, batchSize).Error; err != nil {
			log.Fatalf("Failed to insert questions: %v", err)
		}
	}

	return len(toInsert), skipped
}
