package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/clock"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ==================== Wallet-connect ====================

// WalletStrategy asks the connected wallet to transfer the invoice amount
// to the merchant address. The request expires after the validity horizon.
type WalletStrategy struct {
	connector ports.WalletConnector
	clock     clock.Clock
	horizon   time.Duration
}

func NewWalletStrategy(connector ports.WalletConnector, clk clock.Clock, horizon time.Duration) *WalletStrategy {
	return &WalletStrategy{connector: connector, clock: clk, horizon: horizon}
}

func (s *WalletStrategy) Name() domain.Strategy { return domain.StrategyWallet }

// TransferFor builds the wallet request for invoice.
func (s *WalletStrategy) TransferFor(invoice domain.Invoice, address string) domain.TransferRequest {
	return domain.TransferRequest{
		ValidUntil: s.clock.Now().Unix() + int64(s.horizon/time.Second),
		Messages: []domain.TransferMessage{{
			Address: address,
			Amount:  domain.ToBaseUnits(invoice.Amount),
		}},
	}
}

func (s *WalletStrategy) Settle(ctx context.Context, invoice domain.Invoice, req domain.SettleRequest) domain.Outcome {
	address := req.MerchantAddress
	if address == "" {
		address = invoice.MerchantAddress
	}
	if !req.Session.Valid() || address == "" {
		return domain.Rejected(errors.New("wallet session or merchant address missing"))
	}

	wctx, cancel := context.WithTimeout(ctx, s.horizon)
	defer cancel()

	out := s.connector.SendTransaction(wctx, *req.Session, s.TransferFor(invoice, address))
	if out.Kind == domain.OutcomeOK || out.Kind == domain.OutcomeMissingProof {
		return out
	}
	switch {
	case ctx.Err() != nil:
		return domain.Cancelled()
	case errors.Is(wctx.Err(), context.DeadlineExceeded):
		return domain.Expired()
	}
	return out
}

// ==================== Simulated ====================

// SimulatedStrategy stands in for network latency in demo mode and always
// resolves to paid unless cancelled.
type SimulatedStrategy struct {
	delayer  clock.Delayer
	ids      ports.IDGenerator
	minDelay time.Duration
	maxDelay time.Duration
	randN    func(n int64) int64
}

func NewSimulatedStrategy(delayer clock.Delayer, ids ports.IDGenerator, minDelay, maxDelay time.Duration) *SimulatedStrategy {
	return &SimulatedStrategy{
		delayer:  delayer,
		ids:      ids,
		minDelay: minDelay,
		maxDelay: maxDelay,
		randN:    rand.Int64N,
	}
}

func (s *SimulatedStrategy) Name() domain.Strategy { return domain.StrategySimulated }

// Delay picks a duration in [minDelay, maxDelay].
func (s *SimulatedStrategy) Delay() time.Duration {
	span := int64(s.maxDelay - s.minDelay)
	if span <= 0 {
		return s.minDelay
	}
	return s.minDelay + time.Duration(s.randN(span+1))
}

func (s *SimulatedStrategy) Settle(ctx context.Context, invoice domain.Invoice, _ domain.SettleRequest) domain.Outcome {
	if err := s.delayer.Sleep(ctx, s.Delay()); err != nil {
		return domain.Cancelled()
	}
	return domain.Succeeded(s.ids.Proof("sim", 6))
}

// ==================== NFT deploy / mint ====================

// ChainStrategy settles through the chain service, either by deploying a
// collection or by minting an item for the invoice's primary product.
type ChainStrategy struct {
	kind     domain.Strategy
	client   ports.ChainClient
	precheck bool
	timeout  time.Duration
	log      zerolog.Logger
}

func NewDeployStrategy(client ports.ChainClient, precheck bool, timeout time.Duration, log zerolog.Logger) *ChainStrategy {
	return &ChainStrategy{kind: domain.StrategyNFTDeploy, client: client, precheck: precheck, timeout: timeout, log: log}
}

func NewMintStrategy(client ports.ChainClient, precheck bool, timeout time.Duration, log zerolog.Logger) *ChainStrategy {
	return &ChainStrategy{kind: domain.StrategyNFTMint, client: client, precheck: precheck, timeout: timeout, log: log}
}

func (s *ChainStrategy) Name() domain.Strategy { return s.kind }

func (s *ChainStrategy) required() decimal.Decimal {
	if s.kind == domain.StrategyNFTDeploy {
		return domain.MinDeployBalance
	}
	return domain.MinMintBalance
}

func (s *ChainStrategy) Settle(ctx context.Context, invoice domain.Invoice, req domain.SettleRequest) domain.Outcome {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.precheck {
		if out, short := s.checkBalance(cctx, invoice.ID); short {
			return out
		}
	}

	name, image := invoice.PrimaryItem()
	description := fmt.Sprintf("Invoice %s from %s", invoice.ID, invoice.Merchant)

	var out domain.Outcome
	if s.kind == domain.StrategyNFTDeploy {
		out = s.client.DeployCollection(cctx, domain.DeployCollectionRequest{
			CollectionName:        name,
			CollectionDescription: description,
			CollectionImage:       image,
		})
	} else {
		out = s.client.MintNFT(cctx, domain.MintNFTRequest{
			Name:             name,
			Image:            image,
			Description:      description,
			RecipientAddress: req.Recipient,
		})
	}

	if out.Kind != domain.OutcomeOK && ctx.Err() != nil {
		return domain.Cancelled()
	}
	return out
}

// checkBalance reports short=true with an InsufficientBalance outcome when
// the operating wallet cannot pay for the operation. An unreachable
// wallet-info endpoint does not block the submission; the chain service
// checks again itself.
func (s *ChainStrategy) checkBalance(ctx context.Context, invoiceID string) (domain.Outcome, bool) {
	info, err := s.client.WalletInfo(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("balance pre-check unavailable")
		return domain.Outcome{}, false
	}
	coins, err := info.Coins()
	if err != nil {
		s.log.Warn().Err(err).Str("balance", info.Balance).Msg("unparseable wallet balance")
		return domain.Outcome{}, false
	}
	if coins.LessThan(s.required()) {
		return domain.InsufficientBalance(coins.StringFixed(4), s.required().String()), true
	}
	return domain.Outcome{}, false
}
