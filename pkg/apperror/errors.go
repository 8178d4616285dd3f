package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string                 `json:"error_code"`
	Message    string                 `json:"message"`
	HTTPStatus int                    `json:"-"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Err        error                  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail attaches a client-visible detail and returns the same error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Invoices (INV) ----

func ErrInvoiceNotFound(id string) *AppError {
	return New("INV_001", fmt.Sprintf("Invoice %s not found", id), http.StatusNotFound)
}

func ErrResultNotFound(id string) *AppError {
	return New("INV_001", fmt.Sprintf("No settlement result for invoice %s", id), http.StatusNotFound)
}

func ErrInvalidAmount() *AppError {
	return New("INV_002", "Invoice amount must be greater than zero", http.StatusBadRequest)
}

func ErrDoubleSettlement(id string) *AppError {
	return New("INV_003", fmt.Sprintf("Invoice %s is already settled", id), http.StatusConflict)
}

func ErrInvoiceNotPending(id string) *AppError {
	return New("INV_004", fmt.Sprintf("Invoice %s is no longer pending", id), http.StatusConflict)
}

func ErrEmptyProof() *AppError {
	return New("INV_005", "Settlement proof must not be empty", http.StatusBadRequest)
}

// ---- Cart (CART) ----

func ErrCartEmpty() *AppError {
	return New("CART_001", "Cart is empty", http.StatusBadRequest)
}

func ErrInvalidQuantity() *AppError {
	return New("CART_002", "Quantity must be at least 1", http.StatusBadRequest)
}

// ---- Settlement (SETTLE) ----

func ErrSettlementRejected(err error) *AppError {
	return Wrap("SETTLE_001", "Settlement was rejected", http.StatusBadGateway, err)
}

func ErrSettlementExpired() *AppError {
	return New("SETTLE_002", "Settlement request expired before confirmation", http.StatusGatewayTimeout)
}

func ErrSettlementInProgress(id string) *AppError {
	return New("SETTLE_003", fmt.Sprintf("Settlement for invoice %s is already in progress", id), http.StatusConflict)
}

func ErrSettlementCancelled() *AppError {
	return New("SETTLE_004", "Settlement was cancelled", http.StatusConflict)
}

func ErrUnknownStrategy(name string) *AppError {
	return New("SETTLE_005", fmt.Sprintf("Unknown settlement strategy %q", name), http.StatusBadRequest)
}

// ---- Chain service (CHAIN) ----

func ErrChainHTTP(status int) *AppError {
	return New("CHAIN_001", fmt.Sprintf("Chain service responded with status %d", status), http.StatusBadGateway).
		WithDetail("upstream_status", status)
}

func ErrChainUnavailable(err error) *AppError {
	return Wrap("CHAIN_002", "Chain service unreachable", http.StatusBadGateway, err)
}

func ErrInsufficientBalance(balance, required string) *AppError {
	return New("CHAIN_003", "Insufficient balance for chain operation", http.StatusPaymentRequired).
		WithDetail("current_balance", balance).
		WithDetail("required_balance", required)
}

// ---- Configuration (CFG) ----

func ErrConfiguration(message string) *AppError {
	return New("CFG_001", message, http.StatusServiceUnavailable)
}

// ---- Storage (STORE) ----

func ErrStorage(err error) *AppError {
	return Wrap("STORE_001", "State storage failure", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}
