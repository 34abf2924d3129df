package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
)

const (
	DefaultBaseURL     = "https://solana-monitoring-app.onrender.com"
	DefaultStopBaseURL = "https://sol-transfer-backend.vercel.app"

	generatePublicKeyPath = "/generate-public-key"
	startMonitoringPath   = "/start-monitoring"
	stopMonitoringPath    = "/stop-monitoring"
	transactionsPath      = "/transactions"

	maxResponseBytes = 1 << 20
)

type API struct {
	BaseURL     string
	StopBaseURL string
}

// MonitorClient talks JSON over HTTP to the monitoring backend. Stop
// requests go to a separate deployment when StopBaseURL is set.
type MonitorClient struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.MonitorService = MonitorClient{}

type seedRequest struct {
	Seed []string `json:"seed"`
}

type startRequest struct {
	Seed                  []string `json:"seed"`
	SecureWalletPublicKey string   `json:"secureWalletPublicKey"`
	Network               string   `json:"network"`
	TokenMintAddress      string   `json:"tokenMintAddress"`
	GasFee                uint64   `json:"gasFee"`
	Label                 string   `json:"label"`
}

type stopRequest struct {
	PublicKey string `json:"publicKey"`
}

type publicKeyResponse struct {
	PublicKey string `json:"publicKey"`
}

type transactionPayload struct {
	Signature string      `json:"signature"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Amount    flexibleNum `json:"amount"`
	Token     string      `json:"token"`
	Status    string      `json:"status"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c MonitorClient) DerivePublicKey(ctx context.Context, seed domain.Seed) (string, error) {
	if seed.IsEmpty() {
		return "", domain.ErrEmptySeed
	}

	var payload publicKeyResponse
	if err := c.postJSON(ctx, c.API.BaseURL, generatePublicKeyPath, seedRequest{Seed: seed.Clone()}, &payload); err != nil {
		return "", fmt.Errorf("generate public key: %w", err)
	}
	if payload.PublicKey == "" {
		return "", errors.New("generate public key: response missing public key")
	}

	return payload.PublicKey, nil
}

func (c MonitorClient) StartMonitoring(ctx context.Context, req ports.StartMonitoringRequest) (string, error) {
	body := startRequest{
		Seed:                  append([]string{}, req.Seed...),
		SecureWalletPublicKey: req.SecureWalletPublicKey,
		Network:               req.Network.Cluster(),
		TokenMintAddress:      req.TokenMintAddress,
		GasFee:                req.GasFee,
		Label:                 req.Label,
	}

	var payload publicKeyResponse
	if err := c.postJSON(ctx, c.API.BaseURL, startMonitoringPath, body, &payload); err != nil {
		return "", fmt.Errorf("start monitoring: %w", err)
	}

	return payload.PublicKey, nil
}

func (c MonitorClient) StopMonitoring(ctx context.Context, publicKey string) error {
	if publicKey == "" {
		return errors.New("public key is required")
	}

	baseURL := c.API.StopBaseURL
	if baseURL == "" {
		baseURL = c.API.BaseURL
	}

	if err := c.postJSON(ctx, baseURL, stopMonitoringPath, stopRequest{PublicKey: publicKey}, nil); err != nil {
		return fmt.Errorf("stop monitoring: %w", err)
	}

	return nil
}

func (c MonitorClient) ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	endpoint, err := buildAPIURL(c.API.BaseURL, transactionsPath)
	if err != nil {
		return nil, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create transactions request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var payload []transactionPayload
	if err := c.do(req, &payload); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	records := make([]domain.TransactionRecord, 0, len(payload))
	for _, tx := range payload {
		records = append(records, domain.TransactionRecord{
			Signature: tx.Signature,
			From:      tx.From,
			To:        tx.To,
			Amount:    float64(tx.Amount),
			Token:     tx.Token,
			Status:    domain.TransactionStatus(strings.ToLower(tx.Status)),
		})
	}

	return records, nil
}

func (c MonitorClient) postJSON(ctx context.Context, baseURL string, path string, body any, out any) error {
	endpoint, err := buildAPIURL(baseURL, path)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c MonitorClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.New(decodeRemoteError(resp))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c MonitorClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c MonitorClient) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeRemoteError(resp *http.Response) string {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	switch {
	case payload.Error != "":
		return fmt.Sprintf("status %d: %s", resp.StatusCode, payload.Error)
	case payload.Message != "":
		return fmt.Sprintf("status %d: %s", resp.StatusCode, payload.Message)
	default:
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return parsed.JoinPath(path).String(), nil
}

// flexibleNum accepts amounts sent either as JSON numbers or numeric strings.
type flexibleNum float64

func (n *flexibleNum) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*n = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", raw, err)
	}
	*n = flexibleNum(value)
	return nil
}
