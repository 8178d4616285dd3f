package service

import (
	"context"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/clock"

	"github.com/rs/zerolog"
)

// notificationService implements ports.NotificationChannel. Store failures
// are logged; notifying never fails the caller.
type notificationService struct {
	store     ports.NotificationStore
	ids       ports.IDGenerator
	clock     clock.Clock
	toastTTL  time.Duration
	resultTTL time.Duration
	log       zerolog.Logger
}

// NewNotificationService creates the UI notification channel.
func NewNotificationService(
	store ports.NotificationStore,
	ids ports.IDGenerator,
	clk clock.Clock,
	toastTTL, resultTTL time.Duration,
	log zerolog.Logger,
) ports.NotificationChannel {
	return &notificationService{
		store:     store,
		ids:       ids,
		clock:     clk,
		toastTTL:  toastTTL,
		resultTTL: resultTTL,
		log:       log,
	}
}

func (s *notificationService) Notify(ctx context.Context, level domain.NotificationLevel, message, invoiceID string) {
	now := s.clock.Now()
	n := domain.Notification{
		ID:        s.ids.NotificationID(),
		Level:     level,
		Message:   message,
		InvoiceID: invoiceID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.toastTTL),
	}
	if err := s.store.Push(context.WithoutCancel(ctx), n); err != nil {
		s.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("failed to push notification")
	}
}

func (s *notificationService) RedirectWithResult(ctx context.Context, payload domain.SettlementPayload) {
	if payload.CreatedAt.IsZero() {
		payload.CreatedAt = s.clock.Now()
	}
	if err := s.store.PutResult(context.WithoutCancel(ctx), payload, s.resultTTL); err != nil {
		s.log.Warn().Err(err).Str("invoice_id", payload.InvoiceID).Msg("failed to store settlement result")
	}
}

// Recent returns live toasts. A broken store yields an empty list.
func (s *notificationService) Recent(ctx context.Context) []domain.Notification {
	list, err := s.store.Recent(ctx, s.clock.Now())
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read notifications")
		return []domain.Notification{}
	}
	if list == nil {
		list = []domain.Notification{}
	}
	return list
}

func (s *notificationService) Result(ctx context.Context, invoiceID string) (*domain.SettlementPayload, error) {
	payload, ok, err := s.store.Result(ctx, invoiceID)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	if !ok {
		return nil, apperror.ErrResultNotFound(invoiceID)
	}
	return &payload, nil
}
