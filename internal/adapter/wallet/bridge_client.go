// Package wallet submits transfer requests to connected wallets through a
// wallet-connect bridge.
package wallet

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

const keySize = 32

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BridgeMessage is the envelope posted to the bridge. Message is
// base64(nonce || box.Seal(transfer)).
type BridgeMessage struct {
	From    string `json:"from"` // app public key, hex
	To      string `json:"to"`   // wallet session id
	Message string `json:"message"`
}

// BridgeReply is returned once the wallet has answered.
type BridgeReply struct {
	ID           string `json:"id,omitempty"`
	TxHash       string `json:"txHash,omitempty"`
	LegacyTxHash string `json:"tx_hash,omitempty"`
	Error        string `json:"error,omitempty"`
}

// BridgeClient implements ports.WalletConnector.
type BridgeClient struct {
	bridgeURL string
	http      HTTPClient
	publicKey [keySize]byte
	secretKey [keySize]byte
	log       zerolog.Logger
}

var _ ports.WalletConnector = (*BridgeClient)(nil)

// NewBridgeClient creates a bridge client. hexSecret must decode to a 32-byte
// NaCl secret key.
func NewBridgeClient(bridgeURL, hexSecret string, httpClient HTTPClient, log zerolog.Logger) (*BridgeClient, error) {
	secret, err := decodeKey(hexSecret)
	if err != nil {
		return nil, fmt.Errorf("app secret key: %w", err)
	}
	if httpClient == nil {
		// The bridge holds the request open until the wallet answers; the
		// caller's deadline bounds it.
		httpClient = &http.Client{}
	}

	public, err := curve25519.X25519(secret[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("deriving app public key: %w", err)
	}

	c := &BridgeClient{
		bridgeURL: strings.TrimRight(bridgeURL, "/"),
		http:      httpClient,
		secretKey: secret,
		log:       log,
	}
	copy(c.publicKey[:], public)
	return c, nil
}

// PublicKey returns the app public key in hex.
func (c *BridgeClient) PublicKey() string {
	return hex.EncodeToString(c.publicKey[:])
}

func (c *BridgeClient) SendTransaction(ctx context.Context, session domain.WalletSession, req domain.TransferRequest) domain.Outcome {
	peer, err := decodeKey(session.PublicKey)
	if err != nil {
		return domain.Rejected(fmt.Errorf("wallet session public key: %w", err))
	}

	sealed, err := c.seal(req, &peer)
	if err != nil {
		return domain.Rejected(err)
	}

	body, err := json.Marshal(BridgeMessage{From: c.PublicKey(), To: session.ID, Message: sealed})
	if err != nil {
		return domain.Rejected(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.bridgeURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return domain.Rejected(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn().Err(err).Str("session_id", session.ID).Msg("wallet bridge unreachable")
		return domain.NetworkFailure(err)
	}
	defer resp.Body.Close()

	var reply BridgeReply
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return domain.NetworkFailure(err)
	}
	_ = json.Unmarshal(raw, &reply)

	switch {
	case reply.Error != "":
		c.log.Info().Str("session_id", session.ID).Str("error", reply.Error).Msg("wallet declined transfer")
		return domain.Rejected(errors.New(reply.Error))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return domain.HTTPFailure(resp.StatusCode, fmt.Errorf("bridge returned HTTP %d", resp.StatusCode))
	case reply.ID != "":
		return domain.Succeeded(reply.ID)
	case reply.TxHash != "":
		return domain.Succeeded(reply.TxHash)
	case reply.LegacyTxHash != "":
		return domain.Succeeded(reply.LegacyTxHash)
	}
	return domain.MissingProof()
}

func (c *BridgeClient) seal(req domain.TransferRequest, peer *[keySize]byte) (string, error) {
	plain, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding transfer: %w", err)
	}

	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	out := box.Seal(nonce[:], plain, &nonce, peer, &c.secretKey)
	return base64.StdEncoding.EncodeToString(out), nil
}

func decodeKey(s string) ([keySize]byte, error) {
	var key [keySize]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return key, fmt.Errorf("decoding key: %w", err)
	}
	if len(raw) != keySize {
		return key, fmt.Errorf("key must be %d bytes, got %d", keySize, len(raw))
	}
	copy(key[:], raw)
	return key, nil
}
