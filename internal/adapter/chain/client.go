// Package chain is the HTTP client for the companion NFT chain service.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	pathDeploy         = "/deploy-collection"
	pathMint           = "/mint-nft"
	pathWalletInfo     = "/wallet-info"
	pathCollectionInfo = "/collection-info"

	maxResponseBytes = 1 << 20
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.ChainClient.
type Client struct {
	baseURL string
	http    HTTPClient
	log     zerolog.Logger
}

var _ ports.ChainClient = (*Client)(nil)

// NewClient creates a chain client with a request timeout. A zero timeout
// means 30s.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, log)
}

func NewClientWithHTTP(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// DeployCollection deploys a collection; the proof is its address.
func (c *Client) DeployCollection(ctx context.Context, req domain.DeployCollectionRequest) domain.Outcome {
	var resp domain.DeployCollectionResponse
	if out, ok := c.submit(ctx, pathDeploy, req, &resp, domain.MinDeployBalance); !ok {
		return out
	}
	return withProof(resp.CollectionAddress, resp)
}

// MintNFT mints one item; the proof is the item address.
func (c *Client) MintNFT(ctx context.Context, req domain.MintNFTRequest) domain.Outcome {
	var resp domain.MintNFTResponse
	if out, ok := c.submit(ctx, pathMint, req, &resp, domain.MinMintBalance); !ok {
		return out
	}
	return withProof(resp.NFTData.NFTAddress, resp)
}

func (c *Client) WalletInfo(ctx context.Context) (*domain.WalletInfo, error) {
	var info domain.WalletInfo
	if err := c.get(ctx, pathWalletInfo, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) CollectionInfo(ctx context.Context) (*domain.CollectionInfo, error) {
	var info domain.CollectionInfo
	if err := c.get(ctx, pathCollectionInfo, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Ping adapts the wallet-info endpoint to ports.HealthChecker.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.WalletInfo(ctx)
	return err
}

func (c *Client) Name() string { return "chain" }

// submit posts body and decodes a 2xx reply into out. ok is false when the
// returned outcome is final.
func (c *Client) submit(ctx context.Context, path string, body, out any, required decimal.Decimal) (domain.Outcome, bool) {
	status, raw, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("chain service unreachable")
		return domain.NetworkFailure(err), false
	}

	if status < 200 || status > 299 {
		var eb domain.ChainErrorBody
		_ = json.Unmarshal(raw, &eb)
		if status == http.StatusBadRequest && isInsufficientBalance(eb) {
			return domain.InsufficientBalance(parseBalance(eb.CurrentBalance), required.String()), false
		}
		c.log.Warn().Int("status", status).Str("path", path).Str("error", eb.Error).Msg("chain service rejected request")
		return domain.HTTPFailure(status, errors.New(errorText(eb, status))), false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return domain.MissingProof(), false
	}
	return domain.Outcome{}, true
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	status, raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return apperror.ErrChainUnavailable(err)
	}
	if status < 200 || status > 299 {
		var eb domain.ChainErrorBody
		_ = json.Unmarshal(raw, &eb)
		appErr := apperror.ErrChainHTTP(status)
		if eb.Message != "" {
			appErr = appErr.WithDetail("upstream_message", eb.Message)
		}
		return appErr
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.ErrChainUnavailable(fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

func withProof(proof string, payload any) domain.Outcome {
	out := domain.MissingProof()
	if proof != "" {
		out = domain.Succeeded(proof)
	}
	out.Payload = payload
	return out
}

func isInsufficientBalance(eb domain.ChainErrorBody) bool {
	return strings.EqualFold(eb.Error, "insufficient balance")
}

// parseBalance turns "0.1000 TON" into "0.1000".
func parseBalance(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "0"
	}
	return fields[0]
}

func errorText(eb domain.ChainErrorBody, status int) string {
	switch {
	case eb.Message != "":
		return eb.Message
	case eb.Error != "":
		return eb.Error
	}
	return fmt.Sprintf("chain service returned HTTP %d", status)
}
