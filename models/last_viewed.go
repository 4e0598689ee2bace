package models

import (
	"time"

	"github.com/google/uuid"
)

// Bài tóm tắt xem gần đây, tối đa 3 bản ghi mỗi user, mới nhất trước.
// Title và SubjectName là snapshot tại thời điểm xem. Bản ghi có môn học
// đã bị xóa chỉ bị ẩn lúc hiển thị, không xóa khỏi DB (môn khôi phục thì
// bản ghi hiện lại).
type LastViewedEntry struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SummaryID uuid.UUID `gorm:"type:uuid;not null" json:"summary_id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	SubjectName string `gorm:"size:255;not null" json:"subject_name"`

	ViewedAt time.Time `gorm:"autoUpdateTime" json:"viewed_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
