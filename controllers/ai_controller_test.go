package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vnkhanh/medflix-backend/services"
)

func TestAIErrorStatus(t *testing.T) {
	genErr := &services.GenerationError{Reason: "AI trả JSON không hợp lệ"}

	assert.Equal(t, http.StatusBadGateway, aiErrorStatus(genErr))
	assert.Equal(t, http.StatusBadGateway, aiErrorStatus(fmt.Errorf("bọc ngoài: %w", genErr)))
	assert.Equal(t, http.StatusInternalServerError, aiErrorStatus(errors.New("lỗi khác")))
}
