package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSuccessResponse wraps data in a successful envelope.
func NewSuccessResponse(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data, Timestamp: time.Now().UTC()}
}

// NewErrorResponse builds a failed envelope. data carries structured error
// details when there are any.
func NewErrorResponse(message string, data any) APIResponse {
	return APIResponse{Success: false, Message: message, Data: data, Timestamp: time.Now().UTC()}
}

// MismatchResponse details a cash request total that does not add up.
type MismatchResponse struct {
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	Line     int             `json:"line,omitempty"`
}
