package controllers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/medflix-backend/models"
	"github.com/vnkhanh/medflix-backend/services"
	"github.com/vnkhanh/medflix-backend/utils"
)

// POST /admin/documents
// Upload tài liệu nguồn (pdf/docx/txt), trích xuất text để dùng cho các
// luồng AI soạn / cập nhật bài tóm tắt.
func UploadDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file đính kèm"})
		return
	}
	if file.Size > 20*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File vượt quá 20MB"})
		return
	}

	ext := filepath.Ext(file.Filename)
	inputType, err := utils.GetInputTypeFromExt(ext)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Tài liệu có thể gắn với 1 bài tóm tắt cụ thể
	var summaryID *uuid.UUID
	if sidStr := c.PostForm("summary_id"); sidStr != "" {
		sid, err := uuid.Parse(sidStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "summary_id không hợp lệ"})
			return
		}
		var summary models.Summary
		if err := db.First(&summary, "id = ?", sid).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài tóm tắt"})
			return
		}
		summaryID = &sid
	}

	docID := uuid.New()

	publicURL, err := utils.UploadFileToSupabase(file, docID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi upload Supabase", "details": err.Error()})
		return
	}

	doc := models.StudyDocument{
		ID:           docID,
		OriginalName: file.Filename,
		FilePath:     publicURL,
		FileType:     strings.TrimPrefix(ext, "."),
		FileSize:     file.Size,
		Status:       "Đang tải lên",
		UserID:       uid,
		SummaryID:    summaryID,
	}
	if err := db.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không lưu được tài liệu", "details": err.Error()})
		return
	}

	// Trích xuất text
	content, err := services.NormalizeInput(services.InputSource{
		Type:       inputType,
		FileHeader: file,
	})
	if err != nil {
		db.Model(&doc).Updates(map[string]interface{}{
			"status": "Lỗi",
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể trích xuất nội dung", "details": err.Error()})
		return
	}

	now := time.Now()
	db.Model(&doc).Updates(map[string]interface{}{
		"status":         "Đã trích xuất",
		"extracted_text": services.PreCleanText(content),
		"processed_at":   &now,
	})

	db.Preload("User").First(&doc, "id = ?", doc.ID)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Upload tài liệu thành công",
		"document": doc,
	})
}

// GET /admin/documents
func GetDocuments(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var docs []models.StudyDocument
	query := db.Order("created_at DESC")

	if sidStr := c.Query("summary_id"); sidStr != "" {
		query = query.Where("summary_id = ?", sidStr)
	}

	if err := query.Find(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách tài liệu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  docs,
		"total": len(docs),
	})
}

// GET /admin/documents/:id
func GetDocumentDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var doc models.StudyDocument
	if err := db.Preload("User").First(&doc, "id = ?", docID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tài liệu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// DELETE /admin/documents/:id
func DeleteDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var doc models.StudyDocument
	if err := db.First(&doc, "id = ?", docID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tài liệu"})
		return
	}

	// Xóa file trên Supabase trước, lỗi thì vẫn xóa bản ghi
	if err := utils.DeleteFileFromSupabase(doc.FilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa file trên storage", "details": err.Error()})
		return
	}

	if err := db.Delete(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa tài liệu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Xóa tài liệu thành công"})
}
