package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Số câu hỏi cố định khi sinh quiz cho 1 bài tóm tắt
const QuizQuestionCount = 5

// Số lựa chọn cố định mỗi câu hỏi
const QuizAlternativeCount = 4

// GenerationError: AI trả kết quả sai cấu trúc hoặc gọi thất bại.
// Nội dung bài không bao giờ bị sửa khi gặp lỗi này, user có thể thử lại.
type GenerationError struct {
	Reason string
}

func (e *GenerationError) Error() string {
	return e.Reason
}

// Câu hỏi do AI sinh, đã qua kiểm tra cấu trúc, chưa lưu DB
type QuizQuestionDraft struct {
	Text         string   `json:"question"`
	Alternatives []string `json:"alternatives"`
	CorrectIndex int      `json:"correct_index"`
}

// EnhanceSummary nhận text thô và trả HTML bài tóm tắt: giữ nguyên
// thông tin, cải thiện cách trình bày. Không tự thêm heading cấp 1,
// dữ liệu dạng bảng phải render thành <table>.
func EnhanceSummary(rawText string) (string, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return "", &GenerationError{Reason: "không có nội dung để xử lý"}
	}

	prompt := fmt.Sprintf(`Bạn là AI biên soạn tài liệu ôn tập y khoa.
Hãy chuyển nội dung sau thành phần thân HTML của 1 bài tóm tắt.

Yêu cầu:
- Giữ nguyên toàn bộ thông tin gốc, chỉ cải thiện độ rõ ràng và cấu trúc.
- Không dùng heading cấp 1 (<h1>), bắt đầu từ <h2> trở xuống.
- Dữ liệu dạng bảng phải trình bày bằng thẻ <table>.
- Chỉ trả về HTML, không markdown, không giải thích thêm.

Nội dung:
%s`, rawText)

	html, err := GeminiGenerateText(prompt)
	if err != nil {
		return "", &GenerationError{Reason: err.Error()}
	}

	html = CleanModelOutput(html)
	if html == "" {
		return "", &GenerationError{Reason: "AI trả về nội dung rỗng"}
	}
	return html, nil
}

// MergeSummaryWithTranscript gộp bài tóm tắt HTML hiện có với phần text
// được chép lại từ tài liệu mới, không lặp lại nội dung đã có.
func MergeSummaryWithTranscript(currentHTML, transcript string) (string, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", &GenerationError{Reason: "tài liệu mới chưa có nội dung trích xuất"}
	}

	prompt := fmt.Sprintf(`Bạn là AI biên soạn tài liệu ôn tập y khoa.
Dưới đây là 1 bài tóm tắt HTML hiện có và phần nội dung mới được chép lại
từ tài liệu bổ sung. Hãy gộp 2 nguồn thành 1 bài tóm tắt HTML duy nhất.

Yêu cầu:
- Tích hợp thông tin mới vào đúng vị trí, không lặp lại nội dung đã có.
- Giữ nguyên thông tin của cả 2 nguồn.
- Không dùng heading cấp 1 (<h1>).
- Chỉ trả về HTML, không markdown, không giải thích thêm.

Bài tóm tắt hiện có:
%s

Nội dung mới:
%s`, currentHTML, transcript)

	html, err := GeminiGenerateText(prompt)
	if err != nil {
		return "", &GenerationError{Reason: err.Error()}
	}

	html = CleanModelOutput(html)
	if html == "" {
		return "", &GenerationError{Reason: "AI trả về nội dung rỗng"}
	}
	return html, nil
}

// GenerateQuizQuestions sinh đúng 5 câu hỏi trắc nghiệm từ nội dung plain
// text của bài tóm tắt. Kết quả sai cấu trúc bị từ chối nguyên khối,
// không lưu 1 phần.
func GenerateQuizQuestions(plainText string) ([]QuizQuestionDraft, error) {
	plainText = strings.TrimSpace(plainText)
	if plainText == "" {
		return nil, &GenerationError{Reason: "bài tóm tắt chưa có nội dung"}
	}

	prompt := fmt.Sprintf(`Bạn là AI tạo câu hỏi trắc nghiệm y khoa.
Hãy tạo đúng %d câu hỏi trắc nghiệm từ nội dung sau.

Yêu cầu:
- Mỗi câu có đúng %d lựa chọn.
- "correct_index" là chỉ số (0-3) của lựa chọn đúng, vị trí ngẫu nhiên.
- Câu hỏi phải dựa hoàn toàn vào nội dung cung cấp.

Trả về JSON hợp lệ đúng cấu trúc:
[
  {
    "question": "Câu hỏi là gì?",
    "alternatives": ["Phương án A", "Phương án B", "Phương án C", "Phương án D"],
    "correct_index": 0
  }
]

Chỉ trả về JSON hợp lệ, không thêm bất kỳ văn bản nào khác.

Nội dung:
%s`, QuizQuestionCount, QuizAlternativeCount, plainText)

	raw, err := GeminiGenerateJSON(prompt)
	if err != nil {
		return nil, &GenerationError{Reason: err.Error()}
	}

	return ParseQuizResponse(raw)
}

// ParseQuizResponse kiểm tra cấu trúc kết quả quiz từ AI trước khi bất kỳ
// thứ gì được ghi xuống DB: đúng số câu, đúng số lựa chọn, index hợp lệ.
func ParseQuizResponse(raw string) ([]QuizQuestionDraft, error) {
	clean := CleanModelOutput(raw)

	var drafts []QuizQuestionDraft
	if err := json.Unmarshal([]byte(clean), &drafts); err != nil {
		return nil, &GenerationError{Reason: fmt.Sprintf("AI trả JSON không hợp lệ: %v", err)}
	}

	if len(drafts) != QuizQuestionCount {
		return nil, &GenerationError{Reason: fmt.Sprintf("cần đúng %d câu hỏi, AI trả %d", QuizQuestionCount, len(drafts))}
	}
	for i, d := range drafts {
		if strings.TrimSpace(d.Text) == "" {
			return nil, &GenerationError{Reason: fmt.Sprintf("câu %d thiếu nội dung", i+1)}
		}
		if len(d.Alternatives) != QuizAlternativeCount {
			return nil, &GenerationError{Reason: fmt.Sprintf("câu %d có %d lựa chọn, cần đúng %d", i+1, len(d.Alternatives), QuizAlternativeCount)}
		}
		if d.CorrectIndex < 0 || d.CorrectIndex >= QuizAlternativeCount {
			return nil, &GenerationError{Reason: fmt.Sprintf("câu %d có correct_index ngoài phạm vi: %d", i+1, d.CorrectIndex)}
		}
	}

	return drafts, nil
}

// ExplainAnswer sinh lời giải thích 1-2 câu vì sao đáp án đúng, dựa trên
// nội dung bài tóm tắt.
func ExplainAnswer(plainText, question, correctAlternative string) (string, error) {
	prompt := fmt.Sprintf(`Dựa hoàn toàn vào nội dung bài học dưới đây, hãy giải thích
trong 1-2 câu vì sao đáp án sau là đúng. Chỉ trả về phần giải thích.

Câu hỏi: %s
Đáp án đúng: %s

Nội dung bài học:
%s`, question, correctAlternative, plainText)

	explanation, err := GeminiGenerateText(prompt)
	if err != nil {
		return "", &GenerationError{Reason: err.Error()}
	}

	explanation = strings.TrimSpace(explanation)
	if explanation == "" {
		return "", &GenerationError{Reason: "AI trả về giải thích rỗng"}
	}
	return explanation, nil
}

// CleanModelOutput bỏ code fence markdown mà model hay bọc quanh kết quả
func CleanModelOutput(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "`")
	clean = strings.TrimPrefix(clean, "json")
	clean = strings.TrimPrefix(clean, "html")
	return strings.TrimSpace(clean)
}
