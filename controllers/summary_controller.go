package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/medflix-backend/models"
	"github.com/vnkhanh/medflix-backend/services"
	"github.com/vnkhanh/medflix-backend/utils"
	"github.com/vnkhanh/medflix-backend/ws"
)

type CreateSummaryInput struct {
	SubjectID string `json:"subject_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
	AudioURL  string `json:"audio_url"`
	VideoURL  string `json:"video_url"`
}

// POST /admin/summaries
func CreateSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	var input CreateSummaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Môn học và tiêu đề bắt buộc"})
		return
	}

	subjectUUID, err := uuid.Parse(input.SubjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject_id không hợp lệ"})
		return
	}

	// Bài tóm tắt phải thuộc 1 môn học tồn tại
	var subject models.Subject
	if err := db.First(&subject, "id = ?", subjectUUID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy môn học"})
		return
	}

	var userUUID *uuid.UUID
	if parsed, err := uuid.Parse(userIDStr); err == nil {
		userUUID = &parsed
	}

	summary := models.Summary{
		SubjectID: subjectUUID,
		Title:     input.Title,
		Content:   input.Content,
		AudioURL:  input.AudioURL,
		VideoURL:  input.VideoURL,
		CreatedBy: userUUID,
	}

	if err := db.Create(&summary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo bài tóm tắt"})
		return
	}

	ws.BroadcastContentChanged()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo bài tóm tắt thành công",
		"summary": summary,
	})
}

// GET /user/summaries/:id
func GetSummaryDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	summaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var summary models.Summary
	if err := db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Subject").
		First(&summary, "id = ?", summaryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài tóm tắt"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn bài tóm tắt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":      summary,
		"subject_name": summary.Subject.Name,
	})
}

type UpdateSummaryInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	AudioURL *string `json:"audio_url"`
	VideoURL *string `json:"video_url"`
}

// PUT /admin/summaries/:id
func UpdateSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	summaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input UpdateSummaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu gửi lên không hợp lệ"})
		return
	}

	var summary models.Summary
	if err := db.First(&summary, "id = ?", summaryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài tóm tắt"})
		return
	}

	if input.Title != nil {
		if *input.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tiêu đề không được để trống"})
			return
		}
		summary.Title = *input.Title
	}
	if input.Content != nil {
		summary.Content = *input.Content
	}
	if input.AudioURL != nil {
		summary.AudioURL = *input.AudioURL
	}
	if input.VideoURL != nil {
		summary.VideoURL = *input.VideoURL
	}

	if parsed, err := uuid.Parse(userIDStr); err == nil {
		summary.UpdatedBy = &parsed
	}

	if err := db.Save(&summary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật bài tóm tắt"})
		return
	}

	ws.BroadcastContentChanged()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cập nhật bài tóm tắt thành công",
		"summary": summary,
	})
}

// DELETE /admin/summaries/:id
func DeleteSummary(c *gin.Context) {
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

	// Questions xóa theo constraint CASCADE. Completion cũ của user không
	// dọn, chấp nhận tham chiếu cũ.
	if err := db.Delete(&summary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa bài tóm tắt"})
		return
	}

	ws.BroadcastContentChanged()

	c.JSON(http.StatusOK, gin.H{"message": "Xóa bài tóm tắt thành công"})
}

// POST /admin/summaries/:id/audio
// Upload file audio cho bài tóm tắt, lưu lên Supabase Storage
func UploadSummaryAudio(c *gin.Context) {
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file audio"})
		return
	}

	url, err := utils.UploadFileToSupabase(fileHeader, summary.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload audio thất bại"})
		return
	}

	summary.AudioURL = url
	if dur, err := services.GetMP3DurationFromURL(url); err == nil {
		summary.AudioDurationSec = dur
	}

	if err := db.Save(&summary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Upload audio thành công",
		"audio_url": summary.AudioURL,
		"duration":  summary.AudioDurationSec,
	})
}

// POST /admin/summaries/:id/narration
// Sinh audio đọc bài tóm tắt bằng Google TTS rồi upload lên Supabase
func GenerateSummaryNarration(c *gin.Context) {
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
	if plain == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bài tóm tắt chưa có nội dung"})
		return
	}

	voice := c.DefaultQuery("voice", "")
	audio, err := services.SynthesizeSummaryAudio(plain, voice, 1.0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sinh audio thất bại: " + err.Error()})
		return
	}

	filename := fmt.Sprintf("%s-%d.mp3", summary.ID.String(), time.Now().Unix())
	url, err := utils.UploadBytesToSupabase(audio, filename, "audio/mpeg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload audio thất bại"})
		return
	}

	summary.AudioURL = url
	if dur, err := services.GetMP3DurationFromURL(url); err == nil {
		summary.AudioDurationSec = dur
	}

	if err := db.Save(&summary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Sinh audio thành công",
		"audio_url": summary.AudioURL,
		"duration":  summary.AudioDurationSec,
	})
}
