package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	convdomain "github.com/smallbiznis/leadflow/internal/conversation/domain"
	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Message string            `json:"-"`
	Errors  []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

// OperationError tags a failure with the message shown to the caller.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func operationFailed(message string, err error) error {
	return &OperationError{Message: message, Err: err}
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrRateLimited        = errors.New("rate_limited")
	ErrServiceUnavailable = errors.New("service_unavailable")
)

// Caller-facing messages.
const (
	msgInvoiceInput      = "Client name, email, and items array are required."
	msgInvoiceFailed     = "Failed to generate invoice. Please try again."
	msgLeadsInput        = "Invalid input. Platform and keywords array are required."
	msgLeadsFailed       = "Failed to generate leads. Please try again."
	msgLeadsFetchFailed  = "Failed to fetch leads."
	msgLeadRequired      = "Lead ID or lead information is required."
	msgUnsupportedType   = "Invalid message type or missing parameters."
	msgLeadIDRequired    = "Lead ID is required."
	msgSendFailed        = "Failed to send message. Please try again."
	msgConversationFetch = "Failed to fetch conversation."
	msgWebhookFailed     = "Webhook processing failed"
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func newValidationError(message, field, code string) error {
	return &ValidationErrors{
		Message: message,
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

// domainValidation maps service sentinels to the field they reject and the
// message the endpoint reports.
var domainValidation = []struct {
	err     error
	field   string
	message string
}{
	{invoicedomain.ErrInvalidClientName, "clientName", msgInvoiceInput},
	{invoicedomain.ErrInvalidClientEmail, "clientEmail", msgInvoiceInput},
	{invoicedomain.ErrInvalidItems, "items", msgInvoiceInput},
	{leaddomain.ErrInvalidPlatform, "platform", msgLeadsInput},
	{leaddomain.ErrInvalidKeywords, "keywords", msgLeadsInput},
	{convdomain.ErrLeadRequired, "leadId", msgLeadRequired},
	{convdomain.ErrUnsupportedMessage, "type", msgUnsupportedType},
	{convdomain.ErrLeadIDRequired, "leadId", msgLeadIDRequired},
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		message := vErr.Message
		if message == "" {
			message = "validation error"
		}
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: message,
			Errors:  vErr.Errors,
		}
	}

	for _, v := range domainValidation {
		if errors.Is(err, v.err) {
			return http.StatusBadRequest, errorPayload{
				Type:    "validation_error",
				Message: v.message,
				Errors: []ValidationError{
					{Field: v.field, Code: v.err.Error(), Message: v.message},
				},
			}
		}
	}

	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "invalid request",
		}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "rate_limited",
			Message: "too many requests",
		}
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "service unavailable",
		}
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: opErr.Message,
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

// classifyErrorForLog reports the payload type and a stable code for the
// request log.
func classifyErrorForLog(err error) (string, string) {
	_, payload := mapError(err)
	code := payload.Type
	if len(payload.Errors) > 0 {
		code = payload.Errors[0].Code
	}
	return payload.Type, code
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}
