package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/cache"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/llm"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/middleware"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/model"
	"gorm.io/gorm"
)

// Accepted question counts per interview.
const (
	MinCount     = 3
	MaxCount     = 12
	DefaultCount = 6
)

const poolCacheTTL = 10 * time.Minute

// ErrGenerationFailed means the AI path produced no usable questions. The
// source recovers from it internally by reading the static pool.
var ErrGenerationFailed = errors.New("question generation produced no usable output")

// Question is one generated or pooled interview question before persistence.
type Question struct {
	QuestionText string `json:"questionText"`
	Category     string `json:"category"`
	Order        int    `json:"order"`
}

// ClampCount coerces a requested count into [MinCount, MaxCount]; zero or
// negative values get the default.
func ClampCount(count int) int {
	if count <= 0 {
		return DefaultCount
	}
	if count < MinCount {
		return MinCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// Source produces the ordered question list for a new interview. The primary
// path asks the generative model; when that fails it falls back to the
// persisted question bank. The two paths share no state, so the fallback is
// always triable after a failed generation attempt.
type Source struct {
	db        *gorm.DB
	completer llm.Completer
	cache     *cache.RedisCache
}

func NewSource(db *gorm.DB, completer llm.Completer, redisCache *cache.RedisCache) *Source {
	return &Source{
		db:        db,
		completer: completer,
		cache:     redisCache,
	}
}

// Source labels reported alongside generated questions.
const (
	SourceAI   = "ai"
	SourceBank = "bank"
)

// Generate returns up to count questions for the category, with strictly
// increasing 0-based order values, plus the label of the path that served
// them. An empty result without error means both the model and the pool came
// up empty; the caller must treat that as a hard failure.
func (s *Source) Generate(ctx context.Context, category string, count int) ([]Question, string, error) {
	category = NormalizeCategory(category)
	count = ClampCount(count)

	questions, err := s.generateWithAI(ctx, category, count)
	if err == nil {
		return questions, SourceAI, nil
	}

	log.Printf("AI question generation failed, using question bank fallback: %v", err)
	questions, err = s.fallbackFromBank(ctx, category, count)
	return questions, SourceBank, err
}

func (s *Source) generateWithAI(ctx context.Context, category string, count int) ([]Question, error) {
	prompt := fmt.Sprintf(llm.QuestionPrompt, count, category, hintFor(category))

	start := time.Now()
	response, err := s.completer.Complete(ctx, llm.QuestionSystemPrompt, prompt)
	middleware.RecordLLMCall("generate", err == nil, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	jsonStr, err := llm.ExtractArray(response)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	var raw []struct {
		QuestionText string `json:"questionText"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	questions := make([]Question, 0, count)
	for _, entry := range raw {
		text := strings.TrimSpace(entry.QuestionText)
		if text == "" {
			continue
		}
		questions = append(questions, Question{
			QuestionText: text,
			Category:     category,
			Order:        len(questions),
		})
		if len(questions) == count {
			break
		}
	}

	if len(questions) == 0 {
		return nil, ErrGenerationFailed
	}

	return questions, nil
}

// fallbackFromBank reads the static pool: exact category match first, the
// unfiltered pool when the category has no rows. An empty pool yields an
// empty slice, not an error.
func (s *Source) fallbackFromBank(ctx context.Context, category string, count int) ([]Question, error) {
	cacheKey := cache.PoolKey(category, count)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			var questions []Question
			if err := json.Unmarshal(cached, &questions); err == nil {
				return questions, nil
			}
		}
	}

	var rows []model.QuestionBankEntry
	if err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Limit(count).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		if err := s.db.WithContext(ctx).
			Order("created_at DESC").
			Limit(count).
			Find(&rows).Error; err != nil {
			return nil, err
		}
	}

	questions := make([]Question, len(rows))
	for i, row := range rows {
		rowCategory := row.Category
		if rowCategory == "" {
			rowCategory = category
		}
		questions[i] = Question{
			QuestionText: row.Question,
			Category:     rowCategory,
			Order:        i,
		}
	}

	if s.cache != nil && len(questions) > 0 {
		if payload, err := json.Marshal(questions); err == nil {
			s.cache.Set(ctx, cacheKey, payload, poolCacheTTL)
		}
	}

	return questions, nil
}
