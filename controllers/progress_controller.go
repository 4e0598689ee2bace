package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/medflix-backend/models"
	"github.com/vnkhanh/medflix-backend/services"
)

// completedSet lấy tập id bài đã hoàn thành của user
func completedSet(db *gorm.DB, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var completions []models.SummaryCompletion
	if err := db.Where("user_id = ?", userID).Find(&completions).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]bool, len(completions))
	for _, comp := range completions {
		set[comp.SummaryID] = true
	}
	return set, nil
}

// POST /user/summaries/:id/complete
// Đánh dấu hoàn thành 1 bài. Chỉ chiều này mới cập nhật streak.
func CompleteSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

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

	// Đã hoàn thành trước đó: không tạo trùng, không đụng streak
	var existing models.SummaryCompletion
	err = db.Where("user_id = ? AND summary_id = ?", userUUID, summaryID).First(&existing).Error
	if err == nil {
		var user models.User
		db.First(&user, "id = ?", userUUID)
		c.JSON(http.StatusOK, gin.H{
			"message": "Bài đã được đánh dấu hoàn thành trước đó",
			"streak":  user.Streak,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể kiểm tra trạng thái hoàn thành"})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userUUID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	completion := models.SummaryCompletion{
		UserID:    userUUID,
		SummaryID: summaryID,
	}
	if err := db.Create(&completion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu trạng thái hoàn thành"})
		return
	}

	// Cập nhật streak theo quy tắc ngày
	newStreak, newDate := services.ApplyCompletion(user.Streak, user.LastCompletionDate, time.Now())
	if err := db.Model(&user).Updates(map[string]interface{}{
		"streak":               newStreak,
		"last_completion_date": newDate,
	}).Error; err != nil {
		// Rollback completion vừa tạo để không lệch trạng thái
		db.Delete(&completion)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật streak"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":              "Đánh dấu hoàn thành thành công",
		"streak":               newStreak,
		"last_completion_date": newDate.Format("2006-01-02"),
	})
}

// DELETE /user/summaries/:id/complete
// Bỏ đánh dấu hoàn thành. Không bao giờ đụng tới streak hay ngày
// hoàn thành (hoàn thành lại cùng ngày vẫn tính là đã đếm).
func UncompleteSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	summaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	if err := db.Where("user_id = ? AND summary_id = ?", userUUID, summaryID).
		Delete(&models.SummaryCompletion{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể bỏ đánh dấu hoàn thành"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã bỏ đánh dấu hoàn thành"})
}

// GET /user/subjects
// Danh sách môn học theo học kỳ của user kèm tiến độ từng môn
func GetMySubjects(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userUUID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	var subjects []models.Subject
	if err := db.
		Preload("Summaries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("term = ?", user.Term).
		Order("created_at ASC").
		Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách môn học"})
		return
	}

	completed, err := completedSet(db, userUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy tiến độ"})
		return
	}

	var allSummaries []models.Summary
	for _, sub := range subjects {
		allSummaries = append(allSummaries, sub.Summaries...)
	}

	type SubjectWithProgress struct {
		models.Subject
		Progress services.ProgressInfo `json:"progress"`
	}

	out := make([]SubjectWithProgress, 0, len(subjects))
	for _, sub := range subjects {
		out = append(out, SubjectWithProgress{
			Subject:  sub,
			Progress: services.SubjectProgress(sub.ID, allSummaries, completed),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"term":     user.Term,
		"subjects": out,
		"total":    len(out),
	})
}

// GET /user/dashboard
// Tổng quan dashboard: streak, tiến độ từng môn, tổng số bài đã hoàn thành
func GetDashboard(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userUUID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	var subjects []models.Subject
	if err := db.
		Preload("Summaries").
		Where("term = ?", user.Term).
		Order("created_at ASC").
		Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách môn học"})
		return
	}

	completed, err := completedSet(db, userUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy tiến độ"})
		return
	}

	var allSummaries []models.Summary
	for _, sub := range subjects {
		allSummaries = append(allSummaries, sub.Summaries...)
	}

	type SubjectProgressItem struct {
		SubjectID uuid.UUID             `json:"subject_id"`
		Name      string                `json:"name"`
		Color     string                `json:"color"`
		Progress  services.ProgressInfo `json:"progress"`
	}

	items := make([]SubjectProgressItem, 0, len(subjects))
	completedInTerm := 0
	for _, sub := range subjects {
		info := services.SubjectProgress(sub.ID, allSummaries, completed)
		completedInTerm += info.Completed
		items = append(items, SubjectProgressItem{
			SubjectID: sub.ID,
			Name:      sub.Name,
			Color:     sub.Color,
			Progress:  info,
		})
	}

	lastDate := ""
	if user.LastCompletionDate != nil {
		lastDate = user.LastCompletionDate.Format("2006-01-02")
	}

	c.JSON(http.StatusOK, gin.H{
		"term":                 user.Term,
		"streak":               user.Streak,
		"last_completion_date": lastDate,
		"subjects":             items,
		"total_summaries":      len(allSummaries),
		"total_completed":      completedInTerm,
	})
}
