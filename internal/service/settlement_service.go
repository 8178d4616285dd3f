package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/clock"

	"github.com/rs/zerolog"
)

const defaultGuardTTL = 6 * time.Minute

// SettlementDeps holds the collaborators of the settlement orchestrator.
type SettlementDeps struct {
	Invoices   ports.InvoiceStore
	Strategies []ports.SettlementStrategy
	Notifier   ports.NotificationChannel
	Mirror     ports.MirrorDispatcher
	Guard      ports.SettlementGuard    // nil = no concurrent-attempt guard
	Recorder   ports.SettlementRecorder // nil = no metrics
	IDs        ports.IDGenerator
	Clock      clock.Clock
	GuardTTL   time.Duration
	Logger     zerolog.Logger
}

// SettlementServiceImpl implements ports.SettlementService.
//
// Flow: Idle -> AwaitingSettlement -> {Settled, Failed}. The strategy's
// tagged outcome decides the transition; nothing is retried automatically.
type SettlementServiceImpl struct {
	invoices   ports.InvoiceStore
	strategies map[domain.Strategy]ports.SettlementStrategy
	notifier   ports.NotificationChannel
	mirror     ports.MirrorDispatcher
	guard      ports.SettlementGuard
	guardTTL   time.Duration
	recorder   ports.SettlementRecorder
	ids        ports.IDGenerator
	clock      clock.Clock
	log        zerolog.Logger
	async      sync.WaitGroup
}

var _ ports.SettlementService = (*SettlementServiceImpl)(nil)

// NewSettlementService creates the settlement orchestrator.
func NewSettlementService(deps SettlementDeps) *SettlementServiceImpl {
	strategies := make(map[domain.Strategy]ports.SettlementStrategy, len(deps.Strategies))
	for _, st := range deps.Strategies {
		strategies[st.Name()] = st
	}
	recorder := deps.Recorder
	if recorder == nil {
		recorder = NopRecorder{}
	}
	ttl := deps.GuardTTL
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &SettlementServiceImpl{
		invoices:   deps.Invoices,
		strategies: strategies,
		notifier:   deps.Notifier,
		mirror:     deps.Mirror,
		guard:      deps.Guard,
		guardTTL:   ttl,
		recorder:   recorder,
		ids:        deps.IDs,
		clock:      deps.Clock,
		log:        deps.Logger,
	}
}

// Settle resolves one pending invoice and returns the updated record.
func (s *SettlementServiceImpl) Settle(ctx context.Context, req domain.SettleRequest) (*domain.SettlementResult, error) {
	invoice, err := s.invoices.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.IsTerminal() {
		return nil, apperror.ErrInvoiceNotPending(invoice.ID)
	}

	strategy, err := s.selectStrategy(req, invoice)
	if err != nil {
		return nil, err
	}

	if s.guard != nil {
		release, err := s.acquire(ctx, invoice.ID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	// Re-read under the guard: a concurrent attempt may have finished.
	invoice, err = s.invoices.BeginSettlement(ctx, invoice.ID, strategy.Name())
	if err != nil {
		return nil, err
	}

	log := s.log.With().Str("invoice_id", invoice.ID).Str("strategy", string(strategy.Name())).Logger()
	log.Info().Str("amount", invoice.Amount.String()).Msg("settlement started")

	start := time.Now()
	out := strategy.Settle(ctx, invoice, req)
	s.recorder.ObserveSettlement(strategy.Name(), out.Kind, time.Since(start))

	return s.resolve(ctx, log, invoice, strategy.Name(), out)
}

// SettleAsync checks the request up front, then settles on a detached
// goroutine. The outcome reaches the UI through the notification channel.
func (s *SettlementServiceImpl) SettleAsync(ctx context.Context, req domain.SettleRequest) (*domain.Invoice, error) {
	invoice, err := s.invoices.Get(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.IsTerminal() {
		return nil, apperror.ErrInvoiceNotPending(invoice.ID)
	}
	if _, err := s.selectStrategy(req, invoice); err != nil {
		return nil, err
	}

	bg := context.WithoutCancel(ctx)
	s.async.Add(1)
	go func() {
		defer s.async.Done()
		if _, err := s.Settle(bg, req); err != nil {
			s.log.Warn().Err(err).Str("invoice_id", req.InvoiceID).Msg("background settlement did not complete")
		}
	}()
	return &invoice, nil
}

// Wait blocks until background settlements finish.
func (s *SettlementServiceImpl) Wait() {
	s.async.Wait()
}

// selectStrategy applies the tie-break: wallet when a session and a
// receiving address are both present, otherwise simulated. Chain strategies
// are only used when asked for.
func (s *SettlementServiceImpl) selectStrategy(req domain.SettleRequest, invoice domain.Invoice) (ports.SettlementStrategy, error) {
	address := req.MerchantAddress
	if address == "" {
		address = invoice.MerchantAddress
	}
	walletReady := req.Session.Valid() && address != ""

	name := req.Strategy
	if name == "" {
		name = domain.StrategyAuto
	}

	switch name {
	case domain.StrategyAuto:
		if walletReady && s.strategies[domain.StrategyWallet] != nil {
			name = domain.StrategyWallet
		} else {
			name = domain.StrategySimulated
		}
	case domain.StrategyWallet:
		if !walletReady {
			return nil, apperror.ErrConfiguration("wallet settlement needs a connected session and a merchant address")
		}
	case domain.StrategySimulated, domain.StrategyNFTDeploy, domain.StrategyNFTMint:
	default:
		return nil, apperror.ErrUnknownStrategy(string(name))
	}

	st, ok := s.strategies[name]
	if !ok {
		return nil, apperror.ErrConfiguration(fmt.Sprintf("settlement strategy %s is not configured", name))
	}
	return st, nil
}

func (s *SettlementServiceImpl) acquire(ctx context.Context, invoiceID string) (func(), error) {
	ok, err := s.guard.Acquire(ctx, invoiceID, s.guardTTL)
	if err != nil {
		s.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("settlement guard unavailable, continuing unguarded")
		return func() {}, nil
	}
	if !ok {
		return nil, apperror.ErrSettlementInProgress(invoiceID)
	}
	return func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), invoiceID); err != nil {
			s.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("failed to release settlement guard")
		}
	}, nil
}

// resolve maps the tagged outcome onto exactly one ledger transition.
func (s *SettlementServiceImpl) resolve(
	ctx context.Context,
	log zerolog.Logger,
	invoice domain.Invoice,
	strategy domain.Strategy,
	out domain.Outcome,
) (*domain.SettlementResult, error) {
	switch out.Kind {
	case domain.OutcomeOK:
		return s.settled(ctx, log, invoice, strategy, out, out.Proof)

	case domain.OutcomeMissingProof:
		proof := s.ids.Proof("tx", 4)
		log.Warn().Str("transaction_hash", proof).Msg("settlement response carried no proof, using placeholder")
		return s.settled(ctx, log, invoice, strategy, out, proof)

	case domain.OutcomeCancelled:
		log.Info().Msg("settlement cancelled, invoice stays pending")
		return nil, apperror.ErrSettlementCancelled()

	case domain.OutcomeHTTPError:
		return s.failed(ctx, log, invoice, strategy, out, apperror.ErrChainHTTP(out.HTTPStatus))

	case domain.OutcomeRejected:
		return s.failed(ctx, log, invoice, strategy, out, apperror.ErrSettlementRejected(out.Err))

	case domain.OutcomeExpired:
		return s.failed(ctx, log, invoice, strategy, out, apperror.ErrSettlementExpired())

	case domain.OutcomeNetworkError:
		return s.failed(ctx, log, invoice, strategy, out, apperror.ErrChainUnavailable(out.Err))

	case domain.OutcomeInsufficientBalance:
		return s.failed(ctx, log, invoice, strategy, out, apperror.ErrInsufficientBalance(out.Balance, out.Required))

	default:
		return s.failed(ctx, log, invoice, strategy, out,
			apperror.InternalError(fmt.Errorf("unknown settlement outcome %q", out.Kind)))
	}
}

func (s *SettlementServiceImpl) settled(
	ctx context.Context,
	log zerolog.Logger,
	invoice domain.Invoice,
	strategy domain.Strategy,
	out domain.Outcome,
	proof string,
) (*domain.SettlementResult, error) {
	if err := s.invoices.MarkPaid(ctx, invoice.ID, proof); err != nil {
		return nil, err
	}
	paid, err := s.invoices.Get(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}

	s.mirror.Mirror(ctx, paid)
	s.notifier.Notify(ctx, domain.NotificationSuccess,
		fmt.Sprintf("Payment received for invoice %s", paid.ID), paid.ID)
	s.notifier.RedirectWithResult(ctx, domain.SettlementPayload{
		InvoiceID: paid.ID,
		Status:    paid.Status,
		Strategy:  strategy,
		Proof:     paid.TransactionHash,
		Chain:     out.Payload,
		CreatedAt: s.clock.Now(),
	})

	log.Info().Str("transaction_hash", paid.TransactionHash).Msg("invoice paid")
	return &domain.SettlementResult{
		Invoice:  paid,
		Strategy: strategy,
		Outcome:  out.Kind,
		Payload:  out.Payload,
	}, nil
}

func (s *SettlementServiceImpl) failed(
	ctx context.Context,
	log zerolog.Logger,
	invoice domain.Invoice,
	strategy domain.Strategy,
	out domain.Outcome,
	cause *apperror.AppError,
) (*domain.SettlementResult, error) {
	if err := s.invoices.MarkFailed(ctx, invoice.ID); err != nil {
		return nil, err
	}

	log.Warn().Err(cause).Str("outcome", string(out.Kind)).Msg("settlement failed")
	s.notifier.Notify(ctx, domain.NotificationError,
		fmt.Sprintf("Payment failed for invoice %s: %s", invoice.ID, cause.Message), invoice.ID)
	s.notifier.RedirectWithResult(ctx, domain.SettlementPayload{
		InvoiceID: invoice.ID,
		Status:    domain.InvoiceStatusFailed,
		Strategy:  strategy,
		Error:     cause.Message,
		CreatedAt: s.clock.Now(),
	})
	return nil, cause
}
