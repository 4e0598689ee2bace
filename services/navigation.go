package services

import (
	"github.com/google/uuid"
)

type Screen string

const (
	ScreenLoading   Screen = "loading"
	ScreenLoggedOut Screen = "logged_out"
	ScreenDashboard Screen = "dashboard"
	ScreenSubject   Screen = "subject"
	ScreenSummary   Screen = "summary"
)

// Trạng thái điều hướng của 1 phiên làm việc. Mỗi màn hình chỉ giữ id
// của entity đang chọn, không giữ nguyên bản ghi.
type NavState struct {
	Screen    Screen     `json:"screen"`
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	SummaryID *uuid.UUID `json:"summary_id,omitempty"`
}

// Trạng thái ban đầu: chờ xác định phiên đăng nhập
func NewNavState() NavState {
	return NavState{Screen: ScreenLoading}
}

// SessionResolved chuyển khỏi màn hình loading khi biết kết quả phiên
func (s NavState) SessionResolved(loggedIn bool) NavState {
	if loggedIn {
		return NavState{Screen: ScreenDashboard}
	}
	return NavState{Screen: ScreenLoggedOut}
}

// SelectSubject: Dashboard -> SubjectView
func (s NavState) SelectSubject(subjectID uuid.UUID) NavState {
	if s.Screen != ScreenDashboard {
		return s
	}
	return NavState{Screen: ScreenSubject, SubjectID: &subjectID}
}

// SelectSummary mở 1 bài tóm tắt từ Dashboard hoặc SubjectView. Luôn ghi
// lại subjectID của bài để BackToSubject hoạt động kể cả khi vào thẳng từ
// Dashboard (tìm kiếm, xem gần đây).
func (s NavState) SelectSummary(summaryID, subjectID uuid.UUID) NavState {
	if s.Screen != ScreenDashboard && s.Screen != ScreenSubject {
		return s
	}
	return NavState{Screen: ScreenSummary, SubjectID: &subjectID, SummaryID: &summaryID}
}

// BackToDashboard: từ bất kỳ màn hình nào, bỏ mọi lựa chọn
func (s NavState) BackToDashboard() NavState {
	if s.Screen == ScreenLoggedOut || s.Screen == ScreenLoading {
		return s
	}
	return NavState{Screen: ScreenDashboard}
}

// BackToSubject: SummaryView -> SubjectView, chỉ bỏ summary đang chọn
func (s NavState) BackToSubject() NavState {
	if s.Screen != ScreenSummary || s.SubjectID == nil {
		return s.BackToDashboard()
	}
	return NavState{Screen: ScreenSubject, SubjectID: s.SubjectID}
}

// Logout xóa toàn bộ lựa chọn và quay về màn hình đăng nhập
func (s NavState) Logout() NavState {
	return NavState{Screen: ScreenLoggedOut}
}

// ResolveNavState kiểm tra entity đang chọn còn tồn tại không (có thể đã
// bị xóa đồng thời). Nếu mất thì tự lùi lên 1 cấp: SummaryView ->
// SubjectView -> Dashboard. Tối đa 2 bước, không bao giờ lặp.
func ResolveNavState(s NavState, subjectExists, summaryExists func(uuid.UUID) bool) NavState {
	if s.Screen == ScreenSummary {
		if s.SummaryID == nil || !summaryExists(*s.SummaryID) {
			s = s.BackToSubject()
		}
	}
	if s.Screen == ScreenSubject {
		if s.SubjectID == nil || !subjectExists(*s.SubjectID) {
			s = s.BackToDashboard()
		}
	}
	return s
}
