package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports/mocks"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/clock"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockNotificationStore(ctrl)
	ids := mocks.NewMockIDGenerator(ctrl)
	clk := clock.NewFake(testStart)
	svc := NewNotificationService(store, ids, clk, 3*time.Second, 10*time.Minute, zerolog.Nop())

	ids.EXPECT().NotificationID().Return("01N")
	store.EXPECT().Push(gomock.Any(), domain.Notification{
		ID:        "01N",
		Level:     domain.NotificationSuccess,
		Message:   "Payment received",
		InvoiceID: "INV-1",
		CreatedAt: testStart,
		ExpiresAt: testStart.Add(3 * time.Second),
	}).Return(nil)

	svc.Notify(context.Background(), domain.NotificationSuccess, "Payment received", "INV-1")
}

func TestNotificationService_StoreErrorsAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockNotificationStore(ctrl)
	ids := mocks.NewMockIDGenerator(ctrl)
	svc := NewNotificationService(store, ids, clock.NewFake(testStart), time.Second, time.Minute, zerolog.Nop())

	ids.EXPECT().NotificationID().Return("01N")
	store.EXPECT().Push(gomock.Any(), gomock.Any()).Return(errors.New("down"))
	store.EXPECT().PutResult(gomock.Any(), gomock.Any(), time.Minute).Return(errors.New("down"))
	store.EXPECT().Recent(gomock.Any(), testStart).Return(nil, errors.New("down"))

	svc.Notify(context.Background(), domain.NotificationError, "x", "")
	svc.RedirectWithResult(context.Background(), domain.SettlementPayload{InvoiceID: "INV-1"})
	assert.Equal(t, []domain.Notification{}, svc.Recent(context.Background()))
}

func TestNotificationService_RedirectStampsTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNotificationStore(ctrl)
	svc := NewNotificationService(store, mocks.NewMockIDGenerator(ctrl), clock.NewFake(testStart), time.Second, time.Minute, zerolog.Nop())

	store.EXPECT().PutResult(gomock.Any(), gomock.Any(), time.Minute).
		DoAndReturn(func(_ context.Context, p domain.SettlementPayload, _ time.Duration) error {
			assert.Equal(t, testStart, p.CreatedAt)
			return nil
		})
	svc.RedirectWithResult(context.Background(), domain.SettlementPayload{InvoiceID: "INV-1", Status: domain.InvoiceStatusPaid})
}

func TestNotificationService_Result(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNotificationStore(ctrl)
	svc := NewNotificationService(store, mocks.NewMockIDGenerator(ctrl), clock.NewFake(testStart), time.Second, time.Minute, zerolog.Nop())

	want := domain.SettlementPayload{InvoiceID: "INV-1", Status: domain.InvoiceStatusPaid, Proof: "abc"}
	store.EXPECT().Result(gomock.Any(), "INV-1").Return(want, true, nil)
	store.EXPECT().Result(gomock.Any(), "INV-2").Return(domain.SettlementPayload{}, false, nil)
	store.EXPECT().Result(gomock.Any(), "INV-3").Return(domain.SettlementPayload{}, false, errors.New("boom"))

	got, err := svc.Result(context.Background(), "INV-1")
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	_, err = svc.Result(context.Background(), "INV-2")
	assert.True(t, apperror.HasCode(err, "INV_001"))

	_, err = svc.Result(context.Background(), "INV-3")
	assert.True(t, apperror.HasCode(err, "STORE_001"))
}
