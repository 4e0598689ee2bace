package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"   // Quản trị nội dung
	RoleStudent UserRole = "student" // Sinh viên (người dùng)
)

// Học kỳ mặc định khi chưa chọn (trùng default của cột term)
const DefaultTerm = "1st Term"

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName string    `gorm:"size:150;not null" json:"full_name"`
	Email    string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string    `gorm:"type:text;not null" json:"-"`
	Role     UserRole  `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Status   *bool     `gorm:"default:true" json:"status"` // false: tài khoản bị tạm khóa

	// Học kỳ hiện tại của sinh viên, ví dụ "3rd Term"
	Term string `gorm:"size:50;not null;default:'1st Term'" json:"term"`

	// Chuỗi ngày học liên tiếp và ngày hoàn thành gần nhất.
	// LastCompletionDate chỉ mang ý nghĩa theo ngày, bỏ qua giờ phút.
	Streak             int        `gorm:"not null;default:0" json:"streak"`
	LastCompletionDate *time.Time `json:"last_completion_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	Completions []SummaryCompletion `gorm:"foreignKey:UserID" json:"-"`
	LastViewed  []LastViewedEntry   `gorm:"foreignKey:UserID" json:"-"`
}
