package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Câu hỏi trắc nghiệm gắn với 1 bài tóm tắt. Luôn có đúng 4 lựa chọn,
// CorrectIndex trong [0,4). Thứ tự hiển thị theo Position.
type Question struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SummaryID uuid.UUID `gorm:"type:uuid;not null;index" json:"summary_id"`
	Summary   Summary   `gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE" json:"-"`

	Position     int                         `gorm:"not null;default:0" json:"position"`
	Text         string                      `gorm:"type:text;not null" json:"text"`
	Alternatives datatypes.JSONSlice[string] `gorm:"not null" json:"alternatives"`
	CorrectIndex int                         `gorm:"not null" json:"correct_index"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
