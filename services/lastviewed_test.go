package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/medflix-backend/models"
)

func viewedEntry(summaryID uuid.UUID, title, subject string) models.LastViewedEntry {
	return models.LastViewedEntry{
		SummaryID:   summaryID,
		Title:       title,
		SubjectName: subject,
	}
}

func TestPushLastViewedDedupAndCap(t *testing.T) {
	a := viewedEntry(uuid.New(), "A", "Giải phẫu")
	b := viewedEntry(uuid.New(), "B", "Giải phẫu")
	c := viewedEntry(uuid.New(), "C", "Hóa sinh")

	var list []models.LastViewedEntry
	list = PushLastViewed(list, a)
	list = PushLastViewed(list, b)
	list = PushLastViewed(list, c)
	// xem lại A: A lên đầu, không nhân đôi
	list = PushLastViewed(list, a)

	require.Len(t, list, 3)
	assert.Equal(t, "A", list[0].Title)
	assert.Equal(t, "C", list[1].Title)
	assert.Equal(t, "B", list[2].Title)
}

func TestPushLastViewedEvictsOldest(t *testing.T) {
	var list []models.LastViewedEntry
	titles := []string{"A", "B", "C", "D"}
	for _, title := range titles {
		list = PushLastViewed(list, viewedEntry(uuid.New(), title, "Giải phẫu"))
	}

	require.Len(t, list, MaxLastViewed)
	assert.Equal(t, "D", list[0].Title)
	assert.Equal(t, "C", list[1].Title)
	assert.Equal(t, "B", list[2].Title)
}

func TestPushLastViewedNewEntryAlwaysFirst(t *testing.T) {
	// bản ghi mới luôn đứng đầu, phần còn lại là các bài khác giữ nguyên
	// thứ tự: nơi ghi DB dựa vào hợp đồng này để biết phần nào cần giữ
	a := viewedEntry(uuid.New(), "A", "Giải phẫu")
	b := viewedEntry(uuid.New(), "B", "Hóa sinh")

	next := PushLastViewed(nil, a)
	require.Len(t, next, 1)
	assert.Equal(t, a.SummaryID, next[0].SummaryID)

	next = PushLastViewed(next, b)
	require.Len(t, next, 2)
	assert.Equal(t, b.SummaryID, next[0].SummaryID)
	assert.Equal(t, a.SummaryID, next[1].SummaryID)
}

func TestVisibleLastViewedHidesDeletedSubject(t *testing.T) {
	list := []models.LastViewedEntry{
		viewedEntry(uuid.New(), "A", "Giải phẫu"),
		viewedEntry(uuid.New(), "B", "Môn đã xóa"),
		viewedEntry(uuid.New(), "C", "Hóa sinh"),
	}
	exists := func(name string) bool { return name != "Môn đã xóa" }

	visible := VisibleLastViewed(list, exists)
	require.Len(t, visible, 2)
	assert.Equal(t, "A", visible[0].Title)
	assert.Equal(t, "C", visible[1].Title)

	// bản ghi gốc không bị đụng tới: môn khôi phục thì hiện lại đủ
	restored := VisibleLastViewed(list, func(string) bool { return true })
	assert.Len(t, restored, 3)
}
