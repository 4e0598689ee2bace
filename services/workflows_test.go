package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuizJSON() string {
	return `[
		{"question":"Câu 1?","alternatives":["a","b","c","d"],"correct_index":0},
		{"question":"Câu 2?","alternatives":["a","b","c","d"],"correct_index":1},
		{"question":"Câu 3?","alternatives":["a","b","c","d"],"correct_index":2},
		{"question":"Câu 4?","alternatives":["a","b","c","d"],"correct_index":3},
		{"question":"Câu 5?","alternatives":["a","b","c","d"],"correct_index":0}
	]`
}

func TestParseQuizResponseValid(t *testing.T) {
	drafts, err := ParseQuizResponse(validQuizJSON())
	require.NoError(t, err)
	require.Len(t, drafts, QuizQuestionCount)
	assert.Equal(t, "Câu 1?", drafts[0].Text)
	assert.Len(t, drafts[0].Alternatives, QuizAlternativeCount)
	assert.Equal(t, 3, drafts[3].CorrectIndex)
}

func TestParseQuizResponseWithCodeFence(t *testing.T) {
	raw := "```json\n" + validQuizJSON() + "\n```"
	drafts, err := ParseQuizResponse(raw)
	require.NoError(t, err)
	assert.Len(t, drafts, QuizQuestionCount)
}

func TestParseQuizResponseWrongCount(t *testing.T) {
	raw := `[{"question":"Câu 1?","alternatives":["a","b","c","d"],"correct_index":0}]`

	_, err := ParseQuizResponse(raw)
	require.Error(t, err)
	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestParseQuizResponseWrongAlternatives(t *testing.T) {
	raw := `[
		{"question":"Câu 1?","alternatives":["a","b","c"],"correct_index":0},
		{"question":"Câu 2?","alternatives":["a","b","c","d"],"correct_index":1},
		{"question":"Câu 3?","alternatives":["a","b","c","d"],"correct_index":2},
		{"question":"Câu 4?","alternatives":["a","b","c","d"],"correct_index":3},
		{"question":"Câu 5?","alternatives":["a","b","c","d"],"correct_index":0}
	]`

	_, err := ParseQuizResponse(raw)
	assert.Error(t, err)
}

func TestParseQuizResponseIndexOutOfRange(t *testing.T) {
	raw := `[
		{"question":"Câu 1?","alternatives":["a","b","c","d"],"correct_index":4},
		{"question":"Câu 2?","alternatives":["a","b","c","d"],"correct_index":1},
		{"question":"Câu 3?","alternatives":["a","b","c","d"],"correct_index":2},
		{"question":"Câu 4?","alternatives":["a","b","c","d"],"correct_index":3},
		{"question":"Câu 5?","alternatives":["a","b","c","d"],"correct_index":0}
	]`

	_, err := ParseQuizResponse(raw)
	assert.Error(t, err)
}

func TestParseQuizResponseInvalidJSON(t *testing.T) {
	_, err := ParseQuizResponse("đây không phải JSON")
	require.Error(t, err)
	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestCleanModelOutput(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanModelOutput("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "<p>x</p>", CleanModelOutput("```html\n<p>x</p>\n```"))
	assert.Equal(t, "plain", CleanModelOutput("  plain  "))
}

func TestStripHTML(t *testing.T) {
	content := `<h2>Hệ tuần hoàn</h2>
<p>Tim có <strong>4 buồng</strong>.</p>
<script>alert("x")</script>
<ul><li>Tâm nhĩ</li><li>Tâm thất</li></ul>`

	text := StripHTML(content)
	assert.Contains(t, text, "Hệ tuần hoàn")
	assert.Contains(t, text, "Tim có 4 buồng")
	assert.Contains(t, text, "Tâm nhĩ")
	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "alert")
}

func TestStripHTMLEntities(t *testing.T) {
	text := StripHTML("<p>Na&#43; &amp; K&#43;</p>")
	assert.Equal(t, "Na+ & K+", text)
}
