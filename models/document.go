package models

import (
	"time"

	"github.com/google/uuid"
)

// Tài liệu gốc (pdf/docx/txt) do admin upload, dùng làm nguồn cho các
// luồng AI (soạn tóm tắt mới, cập nhật tóm tắt từ tài liệu mới).
type StudyDocument struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null" json:"user_id"` // admin
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"user"`

	// Gắn với bài tóm tắt nếu tài liệu được import cho 1 bài cụ thể
	SummaryID *uuid.UUID `gorm:"type:uuid" json:"summary_id,omitempty"`

	OriginalName  string     `gorm:"size:255;not null" json:"original_name"`
	FilePath      string     `gorm:"type:text;not null" json:"file_path"`
	FileType      string     `gorm:"size:50" json:"file_type"`
	FileSize      int64      `json:"file_size"` // bytes
	ExtractedText string     `gorm:"type:text" json:"extracted_text"`
	Status        string     `gorm:"size:30;default:'Đang tải lên'" json:"status"` // Đang tải lên|Đã trích xuất|Lỗi
	ProcessedAt   *time.Time `json:"processed_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
