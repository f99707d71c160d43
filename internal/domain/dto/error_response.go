package dto

import (
	"time"

	"github.com/guttosm/tickercast/internal/domain/models"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message      string    `json:"message" example:"Invalid stock symbol"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid_symbol: ZZZINVALID"`
	Kind         string    `json:"kind,omitempty" example:"invalid_symbol"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse stamped with the current time. The
// failure kind is copied from err when it carries one.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
		resp.Kind = string(models.KindOf(err))
	}
	return resp
}
