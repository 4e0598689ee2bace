package services

import (
	"github.com/vnkhanh/medflix-backend/models"
)

// Số bài xem gần đây tối đa mỗi user
const MaxLastViewed = 3

// PushLastViewed thêm 1 bài vừa xem vào đầu danh sách: bỏ bản ghi cũ của
// cùng bài nếu có, chèn lên đầu, cắt còn tối đa MaxLastViewed.
func PushLastViewed(list []models.LastViewedEntry, entry models.LastViewedEntry) []models.LastViewedEntry {
	out := make([]models.LastViewedEntry, 0, len(list)+1)
	out = append(out, entry)
	for _, e := range list {
		if e.SummaryID == entry.SummaryID {
			continue
		}
		out = append(out, e)
	}
	if len(out) > MaxLastViewed {
		out = out[:MaxLastViewed]
	}
	return out
}

// VisibleLastViewed lọc bỏ các bản ghi có môn học không còn tồn tại.
// Chỉ lọc lúc hiển thị, không xóa bản ghi gốc: môn được khôi phục thì
// bản ghi hiện lại.
func VisibleLastViewed(list []models.LastViewedEntry, subjectExists func(name string) bool) []models.LastViewedEntry {
	out := []models.LastViewedEntry{}
	for _, e := range list {
		if subjectExists(e.SubjectName) {
			out = append(out, e)
		}
	}
	return out
}
