package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vnkhanh/medflix-backend/models"
)

type SubjectMatch struct {
	Subject      models.Subject `json:"subject"`
	SummaryCount int            `json:"summary_count"`
}

type SummaryMatch struct {
	Summary     models.Summary `json:"summary"`
	SubjectName string         `json:"subject_name"`
}

// Kết quả lọc nội dung theo từ khóa. Query rỗng: 2 danh sách match rỗng,
// AllSummaries vẫn chứa toàn bộ để nơi khác tính tiến độ.
type ContentFilter struct {
	Query        string           `json:"query"`
	Subjects     []SubjectMatch   `json:"subjects"`
	Summaries    []SummaryMatch   `json:"summaries"`
	AllSummaries []models.Summary `json:"-"`
}

// FilterContent tìm kiếm không phân biệt hoa thường trên tên môn học và
// tiêu đề bài tóm tắt. Hai danh sách match độc lập với nhau, giữ nguyên
// thứ tự gốc, không xếp hạng.
func FilterContent(query string, subjects []models.Subject, summaries []models.Summary) ContentFilter {
	result := ContentFilter{
		Query:        strings.TrimSpace(query),
		Subjects:     []SubjectMatch{},
		Summaries:    []SummaryMatch{},
		AllSummaries: summaries,
	}
	if result.Query == "" {
		return result
	}

	q := strings.ToLower(result.Query)

	countBySubject := make(map[uuid.UUID]int)
	nameBySubject := make(map[uuid.UUID]string)
	for _, sub := range subjects {
		nameBySubject[sub.ID] = sub.Name
	}
	for _, sum := range summaries {
		countBySubject[sum.SubjectID]++
	}

	for _, sub := range subjects {
		if strings.Contains(strings.ToLower(sub.Name), q) {
			result.Subjects = append(result.Subjects, SubjectMatch{
				Subject:      sub,
				SummaryCount: countBySubject[sub.ID],
			})
		}
	}

	for _, sum := range summaries {
		if strings.Contains(strings.ToLower(sum.Title), q) {
			result.Summaries = append(result.Summaries, SummaryMatch{
				Summary:     sum,
				SubjectName: nameBySubject[sum.SubjectID],
			})
		}
	}

	return result
}

type ProgressInfo struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"` // 0-100
}

// SubjectProgress tính tiến độ 1 môn học: phần trăm bài đã hoàn thành
// trên tổng số bài của môn. Môn chưa có bài nào thì 0%, không chia cho 0.
func SubjectProgress(subjectID uuid.UUID, summaries []models.Summary, completed map[uuid.UUID]bool) ProgressInfo {
	var info ProgressInfo
	for _, sum := range summaries {
		if sum.SubjectID != subjectID {
			continue
		}
		info.Total++
		if completed[sum.ID] {
			info.Completed++
		}
	}
	if info.Total > 0 {
		info.Percent = float64(info.Completed) / float64(info.Total) * 100
	}
	return info
}
