package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"zeit/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("bad input"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "bad input",
		},
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("invalid timezone 'Mars/Phobos'")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid timezone 'Mars/Phobos'",
		},
		{
			name:     "too many requests",
			err:      failure.TooManyRequests("slow down"),
			wantCode: http.StatusTooManyRequests,
			wantMsg:  "slow down",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
		{
			name:     "internal error from string",
			err:      failure.InternalErrorFromString("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestConstructorsWithNilError(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))
	assert.Nil(t, failure.InternalError(nil))
}

func TestGetCodeDefaultsToInternalError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain error")))
}

func TestGetCodeUnwrapsWrappedFailures(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", failure.BadRequestFromString("bad input"))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(wrapped))
}
