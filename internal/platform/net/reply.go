package net

import (
	"net/http"

	perr "tripparse/internal/platform/errors"
)

// Wire is the common envelope used by transports.
// Success is always present; exactly one of Data or Error carries the payload
type Wire struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *WireError `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// WireError is the error half of the envelope
type WireError struct {
	Code    perr.ErrorCode `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) {
	return http.StatusOK, Wire{
		Success:   true,
		Data:      data,
		RequestID: reqID,
	}
}

// Created builds a 201 envelope
func Created(data any, reqID string) (int, Wire) {
	return http.StatusCreated, Wire{
		Success:   true,
		Data:      data,
		RequestID: reqID,
	}
}

// NoContent builds a 204 envelope
func NoContent(reqID string) (int, Wire) {
	return http.StatusNoContent, Wire{
		Success:   true,
		RequestID: reqID,
	}
}

// Error builds an error envelope
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		Success:   false,
		Error:     &WireError{Code: w.Code, Message: w.Message, Field: w.Field},
		RequestID: reqID,
	}
}
