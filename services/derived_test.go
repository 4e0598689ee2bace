package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/medflix-backend/models"
)

func sampleContent() ([]models.Subject, []models.Summary) {
	anatomy := models.Subject{ID: uuid.New(), Name: "Giải phẫu", Term: "1st Term"}
	biochem := models.Subject{ID: uuid.New(), Name: "Hóa sinh", Term: "1st Term"}

	summaries := []models.Summary{
		{ID: uuid.New(), SubjectID: anatomy.ID, Title: "Hệ xương khớp"},
		{ID: uuid.New(), SubjectID: anatomy.ID, Title: "Hệ tuần hoàn"},
		{ID: uuid.New(), SubjectID: biochem.ID, Title: "Chuyển hóa glucose"},
	}
	return []models.Subject{anatomy, biochem}, summaries
}

func TestFilterContentEmptyQuery(t *testing.T) {
	subjects, summaries := sampleContent()

	for _, q := range []string{"", "   ", "\t"} {
		result := FilterContent(q, subjects, summaries)
		assert.Empty(t, result.Subjects)
		assert.Empty(t, result.Summaries)
		// danh sách đầy đủ vẫn giữ lại để tính tiến độ
		assert.Len(t, result.AllSummaries, 3)
	}
}

func TestFilterContentCaseInsensitive(t *testing.T) {
	subjects, summaries := sampleContent()

	result := FilterContent("GIẢI PHẪU", subjects, summaries)
	require.Len(t, result.Subjects, 1)
	assert.Equal(t, "Giải phẫu", result.Subjects[0].Subject.Name)
	assert.Equal(t, 2, result.Subjects[0].SummaryCount)
}

func TestFilterContentIndependentLists(t *testing.T) {
	subjects, summaries := sampleContent()

	// "hệ" chỉ khớp tiêu đề bài, không khớp tên môn nào
	result := FilterContent("hệ", subjects, summaries)
	assert.Empty(t, result.Subjects)
	require.Len(t, result.Summaries, 2)
	assert.Equal(t, "Hệ xương khớp", result.Summaries[0].Summary.Title)
	assert.Equal(t, "Giải phẫu", result.Summaries[0].SubjectName)

	// "hóa" khớp cả tên môn lẫn tiêu đề bài, 2 danh sách độc lập
	result = FilterContent("hóa", subjects, summaries)
	require.Len(t, result.Subjects, 1)
	assert.Equal(t, "Hóa sinh", result.Subjects[0].Subject.Name)
	require.Len(t, result.Summaries, 2)
}

func TestFilterContentNoMatch(t *testing.T) {
	subjects, summaries := sampleContent()

	result := FilterContent("nội khoa", subjects, summaries)
	assert.Empty(t, result.Subjects)
	assert.Empty(t, result.Summaries)
}

func TestSubjectProgress(t *testing.T) {
	subjects, summaries := sampleContent()
	anatomy := subjects[0]

	completed := map[uuid.UUID]bool{summaries[0].ID: true}

	info := SubjectProgress(anatomy.ID, summaries, completed)
	assert.Equal(t, 1, info.Completed)
	assert.Equal(t, 2, info.Total)
	assert.InDelta(t, 50.0, info.Percent, 0.001)
}

func TestSubjectProgressEmptySubject(t *testing.T) {
	_, summaries := sampleContent()

	// môn chưa có bài nào: 0% chứ không chia cho 0
	info := SubjectProgress(uuid.New(), summaries, nil)
	assert.Equal(t, 0, info.Total)
	assert.Equal(t, 0.0, info.Percent)
}

func TestSubjectProgressAllCompleted(t *testing.T) {
	subjects, summaries := sampleContent()
	anatomy := subjects[0]

	completed := map[uuid.UUID]bool{}
	for _, s := range summaries {
		completed[s.ID] = true
	}

	info := SubjectProgress(anatomy.ID, summaries, completed)
	assert.Equal(t, info.Total, info.Completed)
	assert.InDelta(t, 100.0, info.Percent, 0.001)
}
