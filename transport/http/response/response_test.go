package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"zeit/shared/failure"
	"zeit/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithPayload(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithPayload(recorder, map[string]string{"timezone": "UTC"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=1", recorder.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"timezone":"UTC"}`, recorder.Body.String())
}

func TestWithErrorKeepsClientMessages(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithError(recorder, failure.BadRequestFromString("Missing 'timezone' query parameter."))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"Missing 'timezone' query parameter."}`, recorder.Body.String())
}

func TestWithErrorMasksInternalDetail(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithError(recorder, failure.InternalErrorFromString("zoneinfo database corrupt at /usr/share/zoneinfo"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error. Please try again later."}`, recorder.Body.String())
}

func TestWithNoContent(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithNoContent(recorder)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}
