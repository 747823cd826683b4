package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/llm"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/middleware"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/model"
	"github.com/akchauhan404/AI-mock-interview-chatbot/internal/resume"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const maxResumeSize = 10 << 20 // 10 MB

// fallbackResumeFeedback is served when the model cannot review the resume.
const fallbackResumeFeedback = `Based on the analysis of your resume, here are some key observations:

**Strengths:**
- Clear structure and formatting
- Relevant work experience mentioned
- Educational background is present

**Areas for Improvement:**
- Consider adding more quantifiable achievements
- Include relevant technical skills section
- Optimize keywords for ATS compatibility
- Add action verbs to describe accomplishments

**Recommendations:**
- Use bullet points for better readability
- Include metrics and numbers where possible
- Tailor content to specific job requirements
- Ensure consistent formatting throughout`

type ResumeHandler struct {
	db        *gorm.DB
	completer llm.Completer
}

func NewResumeHandler(db *gorm.DB, completer llm.Completer) *ResumeHandler {
	return &ResumeHandler{db: db, completer: completer}
}

// Analyze extracts text from an uploaded PDF/DOCX resume, computes an ATS
// compatibility score and asks the model for review feedback. Feedback
// degrades to a canned response when the model is unavailable; the score
// never depends on the model.
func (h *ResumeHandler) Analyze(c *gin.Context) {
	userID := c.GetInt64("userID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	if fileHeader.Size > maxResumeSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large, maximum size is 10MB"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != resume.ContentTypePDF && contentType != resume.ContentTypeDOCX {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type, please upload PDF or DOCX files only"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	text, err := resume.ExtractText(data, contentType)
	if err != nil {
		log.Printf("Resume parsing failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse file, please ensure it is not corrupted"})
		return
	}

	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text content found in the file"})
		return
	}

	atsScore, keywords := resume.ATSScore(text)
	feedback := h.reviewWithAI(c, text)

	analysis, _ := json.Marshal(gin.H{
		"atsScore":        atsScore,
		"matchedKeywords": keywords,
		"textLength":      len(text),
	})

	record := model.Resume{
		ID:           uuid.NewString(),
		UserID:       userID,
		Filename:     fmt.Sprintf("%d-%s", time.Now().UnixMilli(), fileHeader.Filename),
		OriginalName: fileHeader.Filename,
		Content:      text,
		ATSScore:     atsScore,
		Keywords:     keywords,
		Feedback:     feedback,
		Analysis:     datatypes.JSON(analysis),
	}

	if err := h.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save analysis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       record.ID,
		"atsScore": atsScore,
		"keywords": keywords,
		"feedback": feedback,
		"filename": record.OriginalName,
	})
}

func (h *ResumeHandler) reviewWithAI(c *gin.Context, text string) string {
	prompt := fmt.Sprintf(llm.ResumeFeedbackPrompt, text)

	start := time.Now()
	response, err := h.completer.Complete(c.Request.Context(), "", prompt)
	middleware.RecordLLMCall("resume", err == nil, time.Since(start))
	if err != nil || strings.TrimSpace(response) == "" {
		log.Printf("Resume AI feedback unavailable, using canned feedback: %v", err)
		return fallbackResumeFeedback
	}
	return response
}

// List returns the caller's past resume analyses, newest first, without the
// extracted text body.
func (h *ResumeHandler) List(c *gin.Context) {
	userID := c.GetInt64("userID")

	var resumes []model.Resume
	if err := h.db.Select("id", "user_id", "original_name", "ats_score", "keywords", "feedback", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&resumes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load resumes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resumes})
}
