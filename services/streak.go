package services

import "time"

// DateOnly cắt phần giờ phút, giữ lại ngày theo timezone của t
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ApplyCompletion cập nhật streak khi user đánh dấu hoàn thành 1 bài.
// Chỉ gọi ở chiều đánh dấu hoàn thành, bỏ đánh dấu không bao giờ đụng
// tới streak. Quy tắc theo ngày (bỏ qua giờ phút):
//   - đã hoàn thành bài khác trong hôm nay: giữ nguyên (idempotent)
//   - hôm qua có hoàn thành: streak + 1
//   - còn lại (đứt chuỗi hoặc lần đầu): streak = 1
//
// Trả về streak mới và ngày hoàn thành gần nhất mới.
func ApplyCompletion(streak int, lastDate *time.Time, now time.Time) (int, time.Time) {
	today := DateOnly(now)

	if lastDate != nil {
		last := DateOnly(*lastDate)
		if last.Equal(today) {
			return streak, last
		}
		if last.AddDate(0, 0, 1).Equal(today) {
			return streak + 1, today
		}
	}
	return 1, today
}
