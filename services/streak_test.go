package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyCompletionFirstEver(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	streak, last := ApplyCompletion(0, nil, now)
	assert.Equal(t, 1, streak)
	assert.Equal(t, DateOnly(now), last)
}

func TestApplyCompletionSameDayIdempotent(t *testing.T) {
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 45, 0, 0, time.UTC)

	// hoàn thành bài thứ hai trong cùng ngày không cộng thêm
	streak, last := ApplyCompletion(4, &morning, evening)
	assert.Equal(t, 4, streak)
	assert.Equal(t, DateOnly(morning), last)
}

func TestApplyCompletionConsecutiveDay(t *testing.T) {
	yesterday := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 0, 5, 0, 0, time.UTC)

	streak, last := ApplyCompletion(4, &yesterday, today)
	assert.Equal(t, 5, streak)
	assert.Equal(t, DateOnly(today), last)
}

func TestApplyCompletionBrokenStreak(t *testing.T) {
	lastWeek := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	streak, _ := ApplyCompletion(12, &lastWeek, today)
	assert.Equal(t, 1, streak)
}

func TestApplyCompletionMonthBoundary(t *testing.T) {
	endOfMonth := time.Date(2025, 2, 28, 20, 0, 0, 0, time.UTC)
	firstOfNext := time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)

	streak, _ := ApplyCompletion(7, &endOfMonth, firstOfNext)
	assert.Equal(t, 8, streak)
}

func TestCompletionCycleKeepsStreak(t *testing.T) {
	// đánh dấu, bỏ đánh dấu rồi đánh dấu lại trong cùng ngày: streak và
	// ngày hoàn thành gần nhất không đổi, vì chiều bỏ đánh dấu không bao
	// giờ đụng tới streak
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	streak, last := ApplyCompletion(3, nil, day)
	assert.Equal(t, 1, streak)

	// un-complete: không gọi ApplyCompletion, giữ nguyên streak và last

	again := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	streak2, last2 := ApplyCompletion(streak, &last, again)
	assert.Equal(t, streak, streak2)
	assert.Equal(t, last, last2)
}

func TestDateOnly(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	ts := time.Date(2025, 3, 10, 23, 59, 59, 123, loc)

	d := DateOnly(ts)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), d)
	assert.Equal(t, loc, d.Location())
}
