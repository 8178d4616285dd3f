package domain

import (
	"github.com/shopspring/decimal"
)

// Strategy names how an invoice gets settled.
type Strategy string

const (
	StrategyAuto      Strategy = "auto"
	StrategyWallet    Strategy = "wallet"
	StrategySimulated Strategy = "simulated"
	StrategyNFTDeploy Strategy = "nft_deploy"
	StrategyNFTMint   Strategy = "nft_mint"
)

// ParseStrategy maps a request value to a Strategy. Empty means auto.
func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(s) {
	case "", StrategyAuto:
		return StrategyAuto, true
	case StrategyWallet, StrategySimulated, StrategyNFTDeploy, StrategyNFTMint:
		return Strategy(s), true
	}
	return "", false
}

// WalletSession is a connected wallet as handed over by the wallet-connect UI.
type WalletSession struct {
	ID        string `json:"id"`
	PublicKey string `json:"public_key"` // hex, 32 bytes
	Address   string `json:"address,omitempty"`
}

// Valid reports whether the session can be addressed by the bridge.
func (s *WalletSession) Valid() bool {
	return s != nil && s.ID != "" && s.PublicKey != ""
}

// TransferMessage is one transfer instruction inside a wallet request.
type TransferMessage struct {
	Address string `json:"address"`
	Amount  string `json:"amount"` // base units
}

// TransferRequest is submitted to a connected wallet for signing.
type TransferRequest struct {
	ValidUntil int64             `json:"valid_until"` // unix seconds
	Messages   []TransferMessage `json:"messages"`
}

// BaseUnitsPerCoin converts a coin amount into chain base units.
var BaseUnitsPerCoin = decimal.New(1, 9)

// ToBaseUnits rounds amount * 1e9 to the nearest integer.
func ToBaseUnits(amount decimal.Decimal) string {
	return amount.Mul(BaseUnitsPerCoin).Round(0).String()
}

// FromBaseUnits converts base units back to coins.
func FromBaseUnits(units decimal.Decimal) decimal.Decimal {
	return units.Div(BaseUnitsPerCoin)
}

// OutcomeKind tags the result of one external settlement call.
type OutcomeKind string

const (
	OutcomeOK                  OutcomeKind = "ok"
	OutcomeMissingProof        OutcomeKind = "missing_proof"
	OutcomeHTTPError           OutcomeKind = "http_error"
	OutcomeRejected            OutcomeKind = "rejected"
	OutcomeExpired             OutcomeKind = "expired"
	OutcomeNetworkError        OutcomeKind = "network_error"
	OutcomeInsufficientBalance OutcomeKind = "insufficient_balance"
	OutcomeCancelled           OutcomeKind = "cancelled"
)

// Outcome is the tagged result of a strategy. Only the fields relevant to
// Kind are set.
type Outcome struct {
	Kind OutcomeKind

	Proof      string // OK
	HTTPStatus int    // HTTPError
	Balance    string // InsufficientBalance, coins
	Required   string // InsufficientBalance, coins
	Payload    any    // chain response published to the result channel
	Err        error  // Rejected, NetworkError, HTTPError
}

func Succeeded(proof string) Outcome { return Outcome{Kind: OutcomeOK, Proof: proof} }

func MissingProof() Outcome { return Outcome{Kind: OutcomeMissingProof} }

func HTTPFailure(status int, err error) Outcome {
	return Outcome{Kind: OutcomeHTTPError, HTTPStatus: status, Err: err}
}

func Rejected(err error) Outcome { return Outcome{Kind: OutcomeRejected, Err: err} }

func Expired() Outcome { return Outcome{Kind: OutcomeExpired} }

func NetworkFailure(err error) Outcome { return Outcome{Kind: OutcomeNetworkError, Err: err} }

func InsufficientBalance(balance, required string) Outcome {
	return Outcome{Kind: OutcomeInsufficientBalance, Balance: balance, Required: required}
}

func Cancelled() Outcome { return Outcome{Kind: OutcomeCancelled} }

// SettleRequest asks the orchestrator to resolve one pending invoice.
type SettleRequest struct {
	InvoiceID       string
	Strategy        Strategy
	Session         *WalletSession
	MerchantAddress string
	Recipient       string // nft_mint owner
}

// SettlementResult is returned to the caller after a settlement attempt.
type SettlementResult struct {
	Invoice  Invoice     `json:"invoice"`
	Strategy Strategy    `json:"strategy"`
	Outcome  OutcomeKind `json:"outcome"`
	Payload  any         `json:"payload,omitempty"`
}
