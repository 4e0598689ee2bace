package services

import (
	"html"
	"regexp"
	"strings"
)

var (
	reScriptStyle = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	reTag         = regexp.MustCompile(`(?s)<[^>]+>`)
	reSpaces      = regexp.MustCompile(`[ \t]+`)
	reBlankLines  = regexp.MustCompile(`\n{3,}`)
)

// StripHTML chuyển nội dung HTML của bài tóm tắt về plain text để đưa
// vào prompt (tạo quiz, giải thích đáp án).
func StripHTML(content string) string {
	text := reScriptStyle.ReplaceAllString(content, "")

	// Giữ xuống dòng cho các thẻ block phổ biến trước khi bỏ tag
	for _, tag := range []string{"</p>", "</li>", "</tr>", "</h1>", "</h2>", "</h3>", "</h4>", "<br>", "<br/>", "<br />"} {
		text = strings.ReplaceAll(text, tag, tag+"\n")
	}

	text = reTag.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = reSpaces.ReplaceAllString(text, " ")
	text = reBlankLines.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
