package models

import (
	"time"

	"github.com/google/uuid"
)

// Bảng màu cố định cho môn học. Khi tạo môn mới sẽ chọn màu chưa dùng
// trong học kỳ nếu còn, hết thì xoay vòng.
var SubjectPalette = []string{
	"#e63946",
	"#f4a261",
	"#e9c46a",
	"#2a9d8f",
	"#264653",
	"#6d597a",
	"#457b9d",
	"#1d3557",
}

// ValidSubjectColor kiểm tra màu có nằm trong bảng màu cố định không
func ValidSubjectColor(color string) bool {
	for _, c := range SubjectPalette {
		if c == color {
			return true
		}
	}
	return false
}

type Subject struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string    `gorm:"size:255;not null" json:"name"`
	Slug  string    `gorm:"size:255;uniqueIndex" json:"slug"` // slug cho URL thân thiện
	Color string    `gorm:"size:20;not null" json:"color"`
	Term  string    `gorm:"size:50;not null;index" json:"term"`

	// Ảnh bìa môn học (tùy chọn), lưu trên Supabase Storage
	ImageURL string `gorm:"type:text" json:"image_url,omitempty"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Summaries []Summary `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"summaries"`
}
