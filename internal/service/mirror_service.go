package service

import (
	"context"
	"sync"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// mirrorDispatcher implements ports.MirrorDispatcher. Replication is
// best effort: failures are logged and never touch the local ledger.
type mirrorDispatcher struct {
	mirrors  []ports.SalesMirror
	timeout  time.Duration
	recorder ports.SettlementRecorder
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewMirrorDispatcher creates a dispatcher over the configured mirrors.
// With no mirrors Mirror is a no-op.
func NewMirrorDispatcher(mirrors []ports.SalesMirror, timeout time.Duration, recorder ports.SettlementRecorder, log zerolog.Logger) ports.MirrorDispatcher {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &mirrorDispatcher{
		mirrors:  mirrors,
		timeout:  timeout,
		recorder: recorder,
		log:      log,
	}
}

// Mirror replicates invoice on a detached goroutine bounded by the
// dispatcher timeout.
func (d *mirrorDispatcher) Mirror(ctx context.Context, invoice domain.Invoice) {
	if len(d.mirrors) == 0 {
		return
	}
	invoice = invoice.Clone()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		var g errgroup.Group
		for _, m := range d.mirrors {
			g.Go(func() error {
				err := m.RecordSale(mctx, invoice)
				d.recorder.ObserveMirror(m.Name(), err)
				if err != nil {
					d.log.Warn().Err(err).
						Str("mirror", m.Name()).
						Str("invoice_id", invoice.ID).
						Msg("sale mirror failed")
				}
				return err
			})
		}
		if err := g.Wait(); err != nil {
			d.log.Warn().Str("invoice_id", invoice.ID).Msg("sale mirroring incomplete; local ledger remains authoritative")
			return
		}
		d.log.Debug().Str("invoice_id", invoice.ID).Int("mirrors", len(d.mirrors)).Msg("sale mirrored")
	}()
}

// Wait blocks until every in-flight mirror finishes. Used on shutdown.
func (d *mirrorDispatcher) Wait() {
	d.wg.Wait()
}

// NopRecorder discards settlement observations.
type NopRecorder struct{}

func (NopRecorder) ObserveSettlement(domain.Strategy, domain.OutcomeKind, time.Duration) {}
func (NopRecorder) ObserveMirror(string, error)                                          {}
