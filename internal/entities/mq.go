package entities

import (
	"net/http"
)

// MQResponse is the status part of every request/reply answer.
type MQResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

func NewOkResponse() MQResponse {
	return MQResponse{Code: http.StatusOK}
}

func NewNotFoundResponse(message string) MQResponse {
	return MQResponse{Code: http.StatusNotFound, Message: message}
}

func NewInternalErrorResponse(message string) MQResponse {
	return MQResponse{Code: http.StatusInternalServerError, Message: message}
}
