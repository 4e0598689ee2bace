package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/medflix-backend/models"
	"github.com/vnkhanh/medflix-backend/services"
)

// GET /user/search?query=
// Tìm kiếm trong học kỳ của user: theo tên môn học và tiêu đề bài tóm
// tắt, 2 danh sách độc lập. Query rỗng trả 2 danh sách rỗng.
func SearchContent(c *gin.Context) {
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
	if err := db.Where("term = ?", user.Term).
		Order("created_at ASC").
		Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tìm môn học"})
		return
	}

	var subjectIDs []uuid.UUID
	for _, sub := range subjects {
		subjectIDs = append(subjectIDs, sub.ID)
	}

	var summaries []models.Summary
	if len(subjectIDs) > 0 {
		if err := db.Where("subject_id IN ?", subjectIDs).
			Order("created_at ASC").
			Find(&summaries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tìm bài tóm tắt"})
			return
		}
	}

	result := services.FilterContent(c.Query("query"), subjects, summaries)

	c.JSON(http.StatusOK, gin.H{
		"query":     result.Query,
		"subjects":  result.Subjects,
		"summaries": result.Summaries,
		"total":     len(result.Subjects) + len(result.Summaries),
	})
}
