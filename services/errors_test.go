// services/errors_test.go
package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusOf(ErrAlreadySubmitted))
	assert.Equal(t, http.StatusConflict, StatusOf(ErrTeamFull))
	assert.Equal(t, http.StatusNotFound, StatusOf(ErrMissionNotFound))
	assert.Equal(t, http.StatusForbidden, StatusOf(ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("disk on fire")))
}

func TestServiceErrorMatchingSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("review failed: %w", ErrInvalidState)

	assert.ErrorIs(t, wrapped, ErrInvalidState)
	assert.NotErrorIs(t, wrapped, ErrTeamFull)
	assert.Equal(t, http.StatusConflict, StatusOf(wrapped))
}
