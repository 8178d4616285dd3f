package domain

import "time"

// NotificationLevel is the toast severity.
type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a short-lived message for the UI. It carries no business state.
type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	InvoiceID string            `json:"invoice_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// Expired reports whether the toast should no longer be shown at now.
func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// SettlementPayload is handed to the next UI step after a settlement attempt.
type SettlementPayload struct {
	InvoiceID string        `json:"invoice_id"`
	Status    InvoiceStatus `json:"status"`
	Strategy  Strategy      `json:"strategy"`
	Proof     string        `json:"transaction_hash,omitempty"`
	Error     string        `json:"error,omitempty"`
	Chain     any           `json:"chain,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
