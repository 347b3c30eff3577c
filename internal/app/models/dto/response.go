package dto

import "time"

// TimeLayout is the wire format for record timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// MessageResponse is the standard success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope. Every handler-boundary
// failure is reduced to a human-readable message; raw storage errors are
// logged server-side only.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewMessage builds a MessageResponse.
func NewMessage(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewError builds an ErrorResponse.
func NewError(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// FormatTime renders a timestamp in the wire format.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// FormatNullableTime renders an optional timestamp, keeping nil as nil.
func FormatNullableTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimeLayout)
	return &s
}
