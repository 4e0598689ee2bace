package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func alwaysExists(uuid.UUID) bool { return true }
func neverExists(uuid.UUID) bool  { return false }

func TestNavStateSessionResolved(t *testing.T) {
	s := NewNavState()
	assert.Equal(t, ScreenLoading, s.Screen)

	assert.Equal(t, ScreenDashboard, s.SessionResolved(true).Screen)
	assert.Equal(t, ScreenLoggedOut, s.SessionResolved(false).Screen)
}

func TestNavStateSelectFlow(t *testing.T) {
	subjectID := uuid.New()
	summaryID := uuid.New()

	s := NewNavState().SessionResolved(true)

	s = s.SelectSubject(subjectID)
	assert.Equal(t, ScreenSubject, s.Screen)
	assert.Equal(t, subjectID, *s.SubjectID)
	assert.Nil(t, s.SummaryID)

	s = s.SelectSummary(summaryID, subjectID)
	assert.Equal(t, ScreenSummary, s.Screen)
	assert.Equal(t, summaryID, *s.SummaryID)
	assert.Equal(t, subjectID, *s.SubjectID)

	// quay lại môn học chỉ bỏ summary đang chọn
	s = s.BackToSubject()
	assert.Equal(t, ScreenSubject, s.Screen)
	assert.Equal(t, subjectID, *s.SubjectID)
	assert.Nil(t, s.SummaryID)

	s = s.BackToDashboard()
	assert.Equal(t, ScreenDashboard, s.Screen)
	assert.Nil(t, s.SubjectID)
}

func TestNavStateSelectSummaryFromDashboard(t *testing.T) {
	// vào thẳng bài tóm tắt từ dashboard (tìm kiếm, xem gần đây) vẫn phải
	// giữ subjectID để quay lại được
	subjectID := uuid.New()
	summaryID := uuid.New()

	s := NavState{Screen: ScreenDashboard}.SelectSummary(summaryID, subjectID)
	assert.Equal(t, ScreenSummary, s.Screen)

	back := s.BackToSubject()
	assert.Equal(t, ScreenSubject, back.Screen)
	assert.Equal(t, subjectID, *back.SubjectID)
}

func TestNavStateGuards(t *testing.T) {
	subjectID := uuid.New()
	summaryID := uuid.New()

	// chưa đăng nhập thì không chọn được gì
	s := NavState{Screen: ScreenLoggedOut}
	assert.Equal(t, s, s.SelectSubject(subjectID))
	assert.Equal(t, s, s.SelectSummary(summaryID, subjectID))
	assert.Equal(t, s, s.BackToDashboard())

	// đang ở SubjectView thì không chọn môn khác trực tiếp
	inSubject := NavState{Screen: ScreenSubject, SubjectID: &subjectID}
	assert.Equal(t, inSubject, inSubject.SelectSubject(uuid.New()))
}

func TestNavStateLogout(t *testing.T) {
	subjectID := uuid.New()
	summaryID := uuid.New()
	s := NavState{Screen: ScreenSummary, SubjectID: &subjectID, SummaryID: &summaryID}

	out := s.Logout()
	assert.Equal(t, ScreenLoggedOut, out.Screen)
	assert.Nil(t, out.SubjectID)
	assert.Nil(t, out.SummaryID)
}

func TestResolveNavStateSummaryDeleted(t *testing.T) {
	subjectID := uuid.New()
	summaryID := uuid.New()
	s := NavState{Screen: ScreenSummary, SubjectID: &subjectID, SummaryID: &summaryID}

	// bài bị xóa, môn còn: lùi về SubjectView
	healed := ResolveNavState(s, alwaysExists, neverExists)
	assert.Equal(t, ScreenSubject, healed.Screen)
	assert.Equal(t, subjectID, *healed.SubjectID)
	assert.Nil(t, healed.SummaryID)
}

func TestResolveNavStateBothDeleted(t *testing.T) {
	subjectID := uuid.New()
	summaryID := uuid.New()
	s := NavState{Screen: ScreenSummary, SubjectID: &subjectID, SummaryID: &summaryID}

	// cả bài lẫn môn đều mất: về thẳng Dashboard trong đúng 2 bước
	healed := ResolveNavState(s, neverExists, neverExists)
	assert.Equal(t, ScreenDashboard, healed.Screen)
	assert.Nil(t, healed.SubjectID)
	assert.Nil(t, healed.SummaryID)
}

func TestResolveNavStateSubjectDeleted(t *testing.T) {
	subjectID := uuid.New()
	s := NavState{Screen: ScreenSubject, SubjectID: &subjectID}

	healed := ResolveNavState(s, neverExists, alwaysExists)
	assert.Equal(t, ScreenDashboard, healed.Screen)
}

func TestResolveNavStateDeterministic(t *testing.T) {
	subjectID := uuid.New()
	summaryID := uuid.New()
	s := NavState{Screen: ScreenSummary, SubjectID: &subjectID, SummaryID: &summaryID}

	first := ResolveNavState(s, neverExists, neverExists)
	second := ResolveNavState(first, neverExists, neverExists)

	// chạy lại trên kết quả đã heal không đổi gì nữa
	assert.Equal(t, first, second)
}

func TestResolveNavStateEverythingExists(t *testing.T) {
	subjectID := uuid.New()
	summaryID := uuid.New()
	s := NavState{Screen: ScreenSummary, SubjectID: &subjectID, SummaryID: &summaryID}

	assert.Equal(t, s, ResolveNavState(s, alwaysExists, alwaysExists))

	dash := NavState{Screen: ScreenDashboard}
	assert.Equal(t, dash, ResolveNavState(dash, neverExists, neverExists))
}
