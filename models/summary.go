package models

import (
	"time"

	"github.com/google/uuid"
)

type Summary struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"subject_id"`
	Subject   Subject   `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`

	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"` // nội dung HTML

	AudioURL string `gorm:"type:text" json:"audio_url,omitempty"`
	VideoURL string `gorm:"type:text" json:"video_url,omitempty"`

	// Thời lượng audio (giây), tính khi upload hoặc sinh TTS
	AudioDurationSec float64 `json:"audio_duration_sec,omitempty"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid" json:"updated_by"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE" json:"questions"`
}
