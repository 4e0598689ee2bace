package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSubjectColor(t *testing.T) {
	for _, c := range SubjectPalette {
		assert.True(t, ValidSubjectColor(c))
	}

	assert.False(t, ValidSubjectColor("#ffffff"))
	assert.False(t, ValidSubjectColor("red"))
	assert.False(t, ValidSubjectColor(""))
	// phải khớp nguyên văn, không chuẩn hóa hoa thường
	assert.False(t, ValidSubjectColor("#E63946"))
}
