// Package response writes the JSON envelope every API route answers with:
// success flag, optional message, payload or error, and the payroll period
// the payload belongs to.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Meta    *Meta        `json:"meta,omitempty"`
}

// ErrorDetail names the failure with a stable code. Details maps request
// fields to validation messages.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Meta carries request-level context that is not part of the payload, such
// as the payroll period a response was computed for.
type Meta struct {
	PeriodID      string `json:"period_id,omitempty"`
	ReferenceDate string `json:"reference_date,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(Response{
			Error: &ErrorDetail{Code: "ENCODING_ERROR", Message: "Failed to encode response"},
		})
	}
}

func ok(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	writeJSON(w, statusCode, Response{Success: true, Message: message, Data: data, Meta: meta})
}

func fail(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	writeJSON(w, statusCode, Response{
		Error: &ErrorDetail{Code: code, Message: message, Details: details},
	})
}

// Success answers 200 with data in the envelope.
func Success(w http.ResponseWriter, data interface{}) {
	ok(w, http.StatusOK, "", data, nil)
}

// SuccessWithMessage is used by state changes such as paying an employee or
// signing a payslip, where the client shows the message.
func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	ok(w, http.StatusOK, message, data, nil)
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	ok(w, http.StatusCreated, message, data, nil)
}

// SuccessWithMeta attaches the period context to a computed payload.
func SuccessWithMeta(w http.ResponseWriter, data interface{}, meta *Meta) {
	ok(w, http.StatusOK, "", data, meta)
}

// File writes a binary download such as a PDF payslip or an xlsx report.
func File(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	fail(w, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

// ValidationError answers 422 with one message per rejected field.
func ValidationError(w http.ResponseWriter, details map[string]string) {
	fail(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
}

func Unauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

// Forbidden is for a role that lacks the route's permission. Records outside
// the actor's branch scope answer NotFound instead.
func Forbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, "FORBIDDEN", message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	fail(w, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

// Conflict covers period-state clashes: closing with pending payments, or a
// period that is already closed.
func Conflict(w http.ResponseWriter, message string) {
	fail(w, http.StatusConflict, "CONFLICT", message, nil)
}
