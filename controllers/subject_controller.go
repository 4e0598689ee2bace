package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vnkhanh/medflix-backend/config"
	"github.com/vnkhanh/medflix-backend/models"
	"github.com/vnkhanh/medflix-backend/utils"
	"github.com/vnkhanh/medflix-backend/ws"
)

// Input cho Create / Update
type CreateSubjectInput struct {
	Name  string `json:"name" binding:"required"`
	Term  string `json:"term" binding:"required"`
	Color string `json:"color"`
}

// pickSubjectColor chọn màu đầu tiên trong bảng màu chưa được dùng trong
// học kỳ. Hết màu thì xoay vòng theo số môn hiện có.
func pickSubjectColor(db *gorm.DB, term string) string {
	var used []string
	db.Model(&models.Subject{}).Where("term = ?", term).Pluck("color", &used)

	usedSet := make(map[string]bool, len(used))
	for _, cl := range used {
		usedSet[cl] = true
	}

	for _, cl := range models.SubjectPalette {
		if !usedSet[cl] {
			return cl
		}
	}
	return models.SubjectPalette[len(used)%len(models.SubjectPalette)]
}

// POST /admin/subjects
func CreateSubject(c *gin.Context) {
	var input CreateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên môn học và học kỳ bắt buộc"})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên môn học bắt buộc"})
		return
	}

	// Lấy userID từ context (nếu có)
	var userUUID *uuid.UUID
	userIDStr := c.GetString("user_id")
	if userIDStr != "" {
		parsed, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
			return
		}
		userUUID = &parsed
	}

	// === Kiểm tra trùng tên trong học kỳ ===
	var count int64
	config.DB.Model(&models.Subject{}).
		Where("LOWER(name) = LOWER(?) AND term = ?", input.Name, input.Term).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên môn học đã tồn tại trong học kỳ này"})
		return
	}

	color := input.Color
	if color == "" {
		color = pickSubjectColor(config.DB, input.Term)
	} else if !models.ValidSubjectColor(color) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Màu không nằm trong bảng màu môn học"})
		return
	}

	subject := models.Subject{
		Name:      strings.TrimSpace(input.Name),
		Term:      input.Term,
		Color:     color,
		CreatedBy: userUUID,
		Slug:      slug.Make(input.Term + "-" + input.Name),
	}

	if err := config.DB.Create(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo môn học"})
		return
	}

	ws.BroadcastContentChanged()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo môn học thành công",
		"subject": subject,
	})
}

// GET /admin/subjects
func GetSubjects(c *gin.Context) {
	db := config.DB

	var subjects []models.Subject
	query := db.Model(&models.Subject{}).
		Preload("Summaries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})

	// Lọc theo học kỳ
	if term := c.Query("term"); term != "" {
		query = query.Where("term = ?", term)
	}

	// Tìm kiếm theo tên môn học
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.
		Order("created_at ASC").
		Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách môn học"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  subjects,
		"total": len(subjects),
	})
}

// GET /admin/subjects/:id
func GetSubjectDetail(c *gin.Context) {
	idParam := c.Param("id")
	subjectID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var subject models.Subject
	if err := config.DB.
		Preload("Summaries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Summaries.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&subject, "id = ?", subjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy môn học"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subject": subject})
}

type UpdateSubjectInput struct {
	Name  string `json:"name"`
	Term  string `json:"term"`
	Color string `json:"color"`
}

// PUT /admin/subjects/:id
func UpdateSubject(c *gin.Context) {
	idParam := c.Param("id")
	subjectID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input UpdateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu gửi lên không hợp lệ"})
		return
	}

	var subject models.Subject
	if err := config.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy môn học"})
		return
	}

	if input.Name != "" {
		if strings.TrimSpace(input.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tên môn học không được để trống"})
			return
		}
		subject.Name = strings.TrimSpace(input.Name)
		subject.Slug = slug.Make(subject.Term + "-" + subject.Name)
	}
	if input.Term != "" {
		subject.Term = input.Term
	}
	if input.Color != "" {
		if !models.ValidSubjectColor(input.Color) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Màu không nằm trong bảng màu môn học"})
			return
		}
		subject.Color = input.Color
	}

	if err := config.DB.Save(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật môn học"})
		return
	}

	ws.BroadcastContentChanged()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cập nhật môn học thành công",
		"subject": subject,
	})
}

// DELETE /admin/subjects/:id
// Xóa môn học kéo theo toàn bộ bài tóm tắt và câu hỏi của môn.
func DeleteSubject(c *gin.Context) {
	idParam := c.Param("id")
	subjectID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var subject models.Subject
	if err := config.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy môn học"})
		return
	}

	// Constraint OnDelete:CASCADE lo phần summaries và questions
	if err := config.DB.Delete(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa môn học"})
		return
	}

	ws.BroadcastContentChanged()

	c.JSON(http.StatusOK, gin.H{"message": "Xóa môn học thành công"})
}

// POST /admin/subjects/:id/image
// Upload ảnh bìa cho môn học, lưu lên Supabase Storage
func UploadSubjectImage(c *gin.Context) {
	idParam := c.Param("id")
	subjectID, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var subject models.Subject
	if err := config.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy môn học"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file ảnh"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File phải là ảnh"})
		return
	}

	url, err := utils.UploadImageToSupabase(fileHeader, subject.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload ảnh thất bại"})
		return
	}

	subject.ImageURL = url
	if err := config.DB.Save(&subject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu ảnh môn học"})
		return
	}

	ws.BroadcastContentChanged()

	c.JSON(http.StatusOK, gin.H{
		"message":   "Upload ảnh thành công",
		"image_url": subject.ImageURL,
	})
}

// GET /api/subjects
// Danh sách môn học công khai (không cần đăng nhập). Có token hợp lệ thì
// lấy theo học kỳ của user, không thì theo query hoặc học kỳ mặc định.
func BrowseSubjects(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	term := c.Query("term")
	if userIDStr := c.GetString("user_id"); userIDStr != "" {
		var user models.User
		if err := db.First(&user, "id = ?", userIDStr).Error; err == nil {
			term = user.Term
		}
	}
	if term == "" {
		term = models.DefaultTerm
	}

	var subjects []models.Subject
	if err := db.Where("term = ?", term).
		Order("created_at ASC").
		Find(&subjects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách môn học"})
		return
	}

	type BrowseSubjectItem struct {
		models.Subject
		SummaryCount int64 `json:"summary_count"`
	}

	out := make([]BrowseSubjectItem, 0, len(subjects))
	for _, sub := range subjects {
		var count int64
		db.Model(&models.Summary{}).Where("subject_id = ?", sub.ID).Count(&count)
		out = append(out, BrowseSubjectItem{Subject: sub, SummaryCount: count})
	}

	c.JSON(http.StatusOK, gin.H{
		"term":     term,
		"subjects": out,
		"total":    len(out),
	})
}
