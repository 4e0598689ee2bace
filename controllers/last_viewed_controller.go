package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/medflix-backend/models"
	"github.com/vnkhanh/medflix-backend/services"
)

// POST /user/summaries/:id/view
// Ghi nhận user mở 1 bài tóm tắt: cập nhật danh sách xem gần đây
// (bỏ bản ghi cũ của cùng bài, chèn lên đầu, giữ tối đa 3).
func ViewSummary(c *gin.Context) {
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
	if err := db.Preload("Subject").First(&summary, "id = ?", summaryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài tóm tắt"})
		return
	}

	// Snapshot tiêu đề + tên môn tại thời điểm xem
	entry := models.LastViewedEntry{
		UserID:      userUUID,
		SummaryID:   summary.ID,
		Title:       summary.Title,
		SubjectName: summary.Subject.Name,
		ViewedAt:    time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var existing []models.LastViewedEntry
		if err := tx.Where("user_id = ?", userUUID).
			Order("viewed_at DESC").
			Find(&existing).Error; err != nil {
			return err
		}

		// Quy tắc dedupe + giới hạn 3 nằm trong services.PushLastViewed,
		// ở đây chỉ đồng bộ DB theo danh sách đã tính
		next := services.PushLastViewed(existing, entry)

		keep := make([]uuid.UUID, 0, len(next)-1)
		for _, e := range next[1:] {
			keep = append(keep, e.SummaryID)
		}

		del := tx.Where("user_id = ?", userUUID)
		if len(keep) > 0 {
			del = del.Where("summary_id NOT IN ?", keep)
		}
		if err := del.Delete(&models.LastViewedEntry{}).Error; err != nil {
			return err
		}

		return tx.Create(&entry).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật danh sách xem gần đây"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã ghi nhận lượt xem", "entry": entry})
}

// GET /user/last-viewed
// Danh sách xem gần đây, ẩn bản ghi có môn học đã bị xóa (không xóa
// bản ghi gốc: môn khôi phục thì hiện lại).
func GetLastViewed(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var entries []models.LastViewedEntry
	if err := db.Where("user_id = ?", userUUID).
		Order("viewed_at DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách xem gần đây"})
		return
	}

	var subjectNames []string
	if err := db.Model(&models.Subject{}).Distinct("name").Pluck("name", &subjectNames).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể kiểm tra môn học"})
		return
	}
	existing := make(map[string]bool, len(subjectNames))
	for _, name := range subjectNames {
		existing[name] = true
	}

	visible := services.VisibleLastViewed(entries, func(name string) bool {
		return existing[name]
	})

	c.JSON(http.StatusOK, gin.H{
		"entries": visible,
		"total":   len(visible),
	})
}
