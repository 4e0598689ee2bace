package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/medflix-backend/models"
	"github.com/vnkhanh/medflix-backend/services"
)

type ResolveNavigationInput struct {
	Screen    string `json:"screen" binding:"required"`
	SubjectID string `json:"subject_id"`
	SummaryID string `json:"summary_id"`
}

// POST /user/navigation/resolve
// Client gửi trạng thái điều hướng hiện tại, server kiểm tra entity còn
// tồn tại không và trả trạng thái đã tự sửa (môn/bài bị xóa thì lùi lên
// 1 cấp thay vì hiển thị tham chiếu hỏng). Không bao giờ là lỗi.
func ResolveNavigation(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input ResolveNavigationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu gửi lên không hợp lệ"})
		return
	}

	state := services.NavState{Screen: services.Screen(input.Screen)}
	if input.SubjectID != "" {
		if id, err := uuid.Parse(input.SubjectID); err == nil {
			state.SubjectID = &id
		}
	}
	if input.SummaryID != "" {
		if id, err := uuid.Parse(input.SummaryID); err == nil {
			state.SummaryID = &id
		}
	}

	subjectExists := func(id uuid.UUID) bool {
		var count int64
		db.Model(&models.Subject{}).Where("id = ?", id).Count(&count)
		return count > 0
	}
	summaryExists := func(id uuid.UUID) bool {
		var count int64
		db.Model(&models.Summary{}).Where("id = ?", id).Count(&count)
		return count > 0
	}

	resolved := services.ResolveNavState(state, subjectExists, summaryExists)

	c.JSON(http.StatusOK, gin.H{"state": resolved})
}
