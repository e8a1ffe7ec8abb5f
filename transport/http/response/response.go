package response

import (
	"encoding/json"
	"net/http"
	"zeit/shared/constant"
	"zeit/shared/failure"
	"zeit/shared/logger"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithPayload sends a 200 response whose body is the payload itself, plus
// the short-lived Cache-Control header matching the response cache window.
func WithPayload(writer http.ResponseWriter, payload interface{}) {
	writer.Header().Set(constant.RequestHeaderCacheControl, constant.CacheControlShortLived)
	response(writer, http.StatusOK, payload)
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError {
		// Internal details stay in the logs; the body carries the generic
		// message only.
		errMsg = constant.ResponseErrorInternal
	}

	response(writer, code, Error{Error: &errMsg})
}

// WithNoContent sends an empty response, used for preflight requests.
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
