package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/medflix-backend/models"
	"github.com/vnkhanh/medflix-backend/services"
	"github.com/vnkhanh/medflix-backend/ws"
)

// aiErrorStatus: lỗi sinh nội dung từ tầng AI trả 502, còn lại 500
func aiErrorStatus(err error) int {
	var genErr *services.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

type EnhanceSummaryInput struct {
	Text       string `json:"text"`
	DocumentID string `json:"document_id"`
}

// POST /admin/ai/enhance
// Nhận text thô (hoặc tài liệu đã trích xuất) và trả về bản nháp HTML
// đã được AI cấu trúc lại. Không ghi vào DB, admin xem trước rồi mới lưu.
func EnhanceSummaryDraft(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input EnhanceSummaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	rawText := strings.TrimSpace(input.Text)
	if rawText == "" && input.DocumentID != "" {
		docID, err := uuid.Parse(input.DocumentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "document_id không hợp lệ"})
			return
		}
		var doc models.StudyDocument
		if err := db.First(&doc, "id = ?", docID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tài liệu"})
			return
		}
		rawText = doc.ExtractedText
	}
	if strings.TrimSpace(rawText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu nội dung nguồn"})
		return
	}

	html, err := services.EnhanceSummary(rawText)
	if err != nil {
		c.JSON(aiErrorStatus(err), gin.H{"error": "AI không tạo được nội dung", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": html})
}

type UpdateFromDocumentInput struct {
	DocumentID string `json:"document_id" binding:"required"`
}

// POST /admin/summaries/:id/update-from-document
// Hợp nhất transcript của tài liệu vào nội dung bài tóm tắt hiện tại.
// Chạy nền, trạng thái đẩy qua websocket; nếu bài bị xóa trong lúc AI
// đang chạy thì kết quả bị bỏ, không ghi gì.
func UpdateSummaryFromDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	summaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input UpdateFromDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu document_id"})
		return
	}
	docID, err := uuid.Parse(input.DocumentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_id không hợp lệ"})
		return
	}

	var summary models.Summary
	if err := db.First(&summary, "id = ?", summaryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài tóm tắt"})
		return
	}

	var doc models.StudyDocument
	if err := db.First(&doc, "id = ?", docID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tài liệu"})
		return
	}
	if strings.TrimSpace(doc.ExtractedText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tài liệu chưa có nội dung trích xuất"})
		return
	}

	userIDStr := c.GetString("user_id")

	go func() {
		ws.SendGenerationStatus(summaryID.String(), "update_from_media", "Đang xử lý", "")

		merged, err := services.MergeSummaryWithTranscript(summary.Content, doc.ExtractedText)
		if err != nil {
			log.Printf("Lỗi hợp nhất nội dung cho summary %s: %v", summaryID, err)
			ws.SendGenerationStatus(summaryID.String(), "update_from_media", "Lỗi", err.Error())
			return
		}

		// AI có thể chạy lâu, bài có thể đã bị xóa trong lúc đó
		var current models.Summary
		if err := db.First(&current, "id = ?", summaryID).Error; err != nil {
			log.Printf("Bỏ kết quả AI: bài tóm tắt %s không còn tồn tại", summaryID)
			return
		}

		updates := map[string]interface{}{"content": merged}
		if uid, err := uuid.Parse(userIDStr); err == nil {
			updates["updated_by"] = uid
		}
		if err := db.Model(&current).Updates(updates).Error; err != nil {
			ws.SendGenerationStatus(summaryID.String(), "update_from_media", "Lỗi", err.Error())
			return
		}

		ws.SendGenerationStatus(summaryID.String(), "update_from_media", "Hoàn thành", "")
		ws.BroadcastContentChanged()
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message":    "Đang cập nhật bài tóm tắt từ tài liệu",
		"summary_id": summaryID,
	})
}

// POST /admin/summaries/:id/generate-quiz
// Sinh bộ 5 câu trắc nghiệm từ nội dung bài tóm tắt. Bộ câu hỏi cũ chỉ bị
// thay khi kết quả AI hợp lệ toàn bộ.
func GenerateSummaryQuiz(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	summaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var summary models.Summary
	if err := db.First(&summary, "id = ?", summaryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài tóm tắt"})
		return
	}

	plain := services.StripHTML(summary.Content)
	if strings.TrimSpace(plain) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bài tóm tắt chưa có nội dung"})
		return
	}

	go func() {
		ws.SendGenerationStatus(summaryID.String(), "generate_quiz", "Đang xử lý", "")

		drafts, err := services.GenerateQuizQuestions(plain)
		if err != nil {
			log.Printf("Lỗi sinh câu hỏi cho summary %s: %v", summaryID, err)
			ws.SendGenerationStatus(summaryID.String(), "generate_quiz", "Lỗi", err.Error())
			return
		}

		var current models.Summary
		if err := db.First(&current, "id = ?", summaryID).Error; err != nil {
			log.Printf("Bỏ kết quả AI: bài tóm tắt %s không còn tồn tại", summaryID)
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("summary_id = ?", summaryID).Delete(&models.Question{}).Error; err != nil {
				return err
			}
			for i, d := range drafts {
				q := models.Question{
					SummaryID:    summaryID,
					Position:     i,
					Text:         d.Text,
					Alternatives: d.Alternatives,
					CorrectIndex: d.CorrectIndex,
				}
				if err := tx.Create(&q).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			ws.SendGenerationStatus(summaryID.String(), "generate_quiz", "Lỗi", err.Error())
			return
		}

		ws.SendGenerationStatus(summaryID.String(), "generate_quiz", "Hoàn thành", "")
		ws.BroadcastContentChanged()
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message":    "Đang sinh bộ câu hỏi",
		"summary_id": summaryID,
	})
}

type ExplainAnswerInput struct {
	QuestionID string `json:"question_id" binding:"required"`
}

// POST /user/quiz/explain
// Giải thích vì sao đáp án đúng, dựa trên nội dung bài tóm tắt.
func ExplainQuizAnswer(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input ExplainAnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu question_id"})
		return
	}
	questionID, err := uuid.Parse(input.QuestionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_id không hợp lệ"})
		return
	}

	var question models.Question
	if err := db.First(&question, "id = ?", questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy câu hỏi"})
		return
	}
	if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Alternatives) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Câu hỏi không có đáp án hợp lệ"})
		return
	}

	var summary models.Summary
	if err := db.First(&summary, "id = ?", question.SummaryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài tóm tắt"})
		return
	}

	explanation, err := services.ExplainAnswer(
		services.StripHTML(summary.Content),
		question.Text,
		question.Alternatives[question.CorrectIndex],
	)
	if err != nil {
		c.JSON(aiErrorStatus(err), gin.H{"error": "AI không tạo được giải thích", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"explanation": explanation})
}
