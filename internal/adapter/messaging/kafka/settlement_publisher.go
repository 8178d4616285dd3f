// Package kafka publishes settled invoices to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"localpay-gateway/config"
	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// EventInvoiceSettled is the event type header value.
const EventInvoiceSettled = "invoice.settled"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// SettledEvent is the message body.
type SettledEvent struct {
	Event           string            `json:"event"`
	MerchantID      string            `json:"merchant_id"`
	InvoiceID       string            `json:"invoice_id"`
	Merchant        string            `json:"merchant"`
	Amount          decimal.Decimal   `json:"amount"`
	Status          string            `json:"status"`
	Strategy        string            `json:"strategy,omitempty"`
	TransactionHash string            `json:"transaction_hash"`
	Items           []domain.LineItem `json:"items"`
	SettledAt       time.Time         `json:"settled_at"`
}

// SettlementPublisher implements ports.SalesMirror over a kafka-go Writer.
type SettlementPublisher struct {
	writer     messageWriter
	merchantID string
	log        zerolog.Logger
}

var _ ports.SalesMirror = (*SettlementPublisher)(nil)

// NewSettlementPublisher builds a synchronous writer for cfg.Topic.
func NewSettlementPublisher(cfg config.KafkaConfig, merchantID string, log zerolog.Logger) (*SettlementPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka: topic is required")
	}

	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
		ErrorLogger: kafkago.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error().Msgf("kafka writer: "+msg, args...)
		}),
	}
	return newPublisher(writer, merchantID, log), nil
}

func newPublisher(w messageWriter, merchantID string, log zerolog.Logger) *SettlementPublisher {
	return &SettlementPublisher{writer: w, merchantID: merchantID, log: log}
}

func (p *SettlementPublisher) Name() string { return "kafka" }

// RecordSale publishes one event keyed by invoice id, so events for an
// invoice land on one partition.
func (p *SettlementPublisher) RecordSale(ctx context.Context, invoice domain.Invoice) error {
	items := invoice.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	body, err := json.Marshal(SettledEvent{
		Event:           EventInvoiceSettled,
		MerchantID:      p.merchantID,
		InvoiceID:       invoice.ID,
		Merchant:        invoice.Merchant,
		Amount:          invoice.Amount,
		Status:          string(invoice.Status),
		Strategy:        string(invoice.Strategy),
		TransactionHash: invoice.TransactionHash,
		Items:           items,
		SettledAt:       time.UnixMilli(invoice.SettledAt).UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode settled event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(invoice.ID),
		Value: body,
		Headers: []kafkago.Header{
			{Key: "event", Value: []byte(EventInvoiceSettled)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", EventInvoiceSettled, err)
	}
	p.log.Debug().Str("invoice_id", invoice.ID).Msg("settled event published")
	return nil
}

func (p *SettlementPublisher) Close() error {
	return p.writer.Close()
}
