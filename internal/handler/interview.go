package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/evaluator"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/middleware"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/model"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/question"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// errStaleSubmission marks a submission that lost the optimistic check on
// current_question.
var errStaleSubmission = errors.New("stale answer submission")

type InterviewHandler struct {
	db        *gorm.DB
	questions *question.Source
	evaluator evaluator.Scorer
}

func NewInterviewHandler(db *gorm.DB, questions *question.Source, scorer evaluator.Scorer) *InterviewHandler {
	return &InterviewHandler{
		db:        db,
		questions: questions,
		evaluator: scorer,
	}
}

type StartRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type SubmitAnswerRequest struct {
	InterviewID string `json:"interviewId"`
	QuestionID  string `json:"questionId"`
	Answer      string `json:"answer"`
}

// Start creates a new interview: generate questions, persist the session and
// its question list, return the first question.
func (h *InterviewHandler) Start(c *gin.Context) {
	userID := c.GetInt64("userID")

	var req StartRequest
	c.ShouldBindJSON(&req)

	category := question.NormalizeCategory(req.Category)
	count := question.ClampCount(req.Count)

	questions, source, err := h.questions.Generate(c.Request.Context(), category, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate questions"})
		return
	}
	if len(questions) == 0 {
		// Both the model and the question bank came up empty; an interview
		// with zero questions is never created.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No questions available"})
		return
	}

	interview := model.Interview{
		ID:              uuid.NewString(),
		UserID:          userID,
		Type:            model.InterviewTypeText,
		Category:        category,
		Status:          model.InterviewActive,
		CurrentQuestion: 0,
		TotalQuestions:  len(questions),
	}

	records := make([]model.InterviewQuestion, len(questions))
	for i, q := range questions {
		records[i] = model.InterviewQuestion{
			ID:           uuid.NewString(),
			InterviewID:  interview.ID,
			QuestionText: q.QuestionText,
			Category:     q.Category,
			Order:        q.Order,
		}
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&interview).Error; err != nil {
			return err
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create interview"})
		return
	}

	middleware.RecordInterviewStarted(category, source)

	c.JSON(http.StatusOK, gin.H{
		"interviewId":     interview.ID,
		"firstQuestion":   records[0],
		"totalQuestions":  interview.TotalQuestions,
		"currentQuestion": 0,
		"category":        category,
	})
}

// SubmitAnswer records and scores one answer, then advances the session
// pointer or finalizes the interview with its aggregate score.
//
// The ownership check runs before any other lookup so the response never
// reveals whether somebody else's interview exists. The answer insert and
// the pointer update share a transaction guarded by an optimistic check on
// current_question; a concurrent duplicate submission loses the race and is
// rejected without writing anything.
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	userID := c.GetInt64("userID")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.InterviewID == "" || req.QuestionID == "" || req.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "interviewId, questionId, and answer are required"})
		return
	}

	var interview model.Interview
	if err := h.db.Where("id = ? AND user_id = ?", req.InterviewID, userID).First(&interview).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
		return
	}

	// A completed interview accepts no further answers.
	if interview.Completed() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
		return
	}

	var q model.InterviewQuestion
	if err := h.db.Where("id = ? AND interview_id = ?", req.QuestionID, interview.ID).First(&q).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	// Retried or out-of-order submissions are rejected before any write; the
	// session only ever accepts the question at the current pointer.
	if q.Order != interview.CurrentQuestion {
		c.JSON(http.StatusConflict, gin.H{"error": "Answer already submitted for this question"})
		return
	}

	// Never fails outward; degraded results keep the session moving.
	evaluation := h.evaluator.Evaluate(c.Request.Context(), q.QuestionText, req.Answer)

	score := evaluation.Score
	answer := model.InterviewAnswer{
		ID:          uuid.NewString(),
		InterviewID: interview.ID,
		QuestionID:  q.ID,
		AnswerText:  req.Answer,
		Score:       &score,
		Feedback:    evaluation.Feedback,
	}

	nextIndex := interview.CurrentQuestion + 1
	finished := nextIndex >= interview.TotalQuestions

	var finalScore float64
	var nextQuestion model.InterviewQuestion

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"current_question": nextIndex,
			"updated_at":       time.Now(),
		}

		if finished {
			var answers []model.InterviewAnswer
			if err := tx.Where("interview_id = ?", interview.ID).Find(&answers).Error; err != nil {
				return err
			}

			var sum float64
			for _, a := range answers {
				if a.Score != nil {
					sum += float64(*a.Score)
				}
			}
			finalScore = sum / float64(len(answers))

			updates["status"] = model.InterviewCompleted
			updates["score"] = finalScore
		}

		// Optimistic check: only advance from the index this request loaded.
		result := tx.Model(&model.Interview{}).
			Where("id = ? AND current_question = ?", interview.ID, interview.CurrentQuestion).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errStaleSubmission
		}

		if !finished {
			return tx.Where("interview_id = ? AND \"order\" = ?", interview.ID, nextIndex).First(&nextQuestion).Error
		}
		return nil
	})

	if errors.Is(err, errStaleSubmission) {
		c.JSON(http.StatusConflict, gin.H{"error": "Answer already submitted for this question"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save answer"})
		return
	}

	if finished {
		c.JSON(http.StatusOK, gin.H{
			"evaluation": evaluation,
			"completed":  true,
			"finalScore": finalScore,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"evaluation":      evaluation,
		"completed":       false,
		"nextQuestion":    nextQuestion,
		"currentQuestion": nextIndex,
		"totalQuestions":  interview.TotalQuestions,
	})
}

// Get returns one interview with its questions and answers.
func (h *InterviewHandler) Get(c *gin.Context) {
	userID := c.GetInt64("userID")
	interviewID := c.Param("id")

	var interview model.Interview
	err := h.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("\"order\" ASC")
	}).Preload("Answers").
		Where("id = ? AND user_id = ?", interviewID, userID).
		First(&interview).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
		return
	}

	c.JSON(http.StatusOK, interview)
}

type InterviewListResponse struct {
	Data       []model.Interview `json:"data"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalCount int64             `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
}

// List returns the caller's interviews, newest first.
func (h *InterviewHandler) List(c *gin.Context) {
	userID := c.GetInt64("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var totalCount int64
	h.db.Model(&model.Interview{}).Where("user_id = ?", userID).Count(&totalCount)

	var interviews []model.Interview
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&interviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load interviews"})
		return
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, InterviewListResponse{
		Data:       interviews,
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	})
}
