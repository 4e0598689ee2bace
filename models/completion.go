package models

import (
	"time"

	"github.com/google/uuid"
)

// Đánh dấu sinh viên đã hoàn thành 1 bài tóm tắt. Unique index đảm bảo
// không có bản ghi trùng (tập hợp, không phải danh sách).
// Bài tóm tắt bị xóa có thể vẫn còn completion cũ, không chủ động dọn.
type SummaryCompletion struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_summary" json:"user_id"`
	SummaryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_summary" json:"summary_id"`

	CompletedAt time.Time `gorm:"autoCreateTime" json:"completed_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
