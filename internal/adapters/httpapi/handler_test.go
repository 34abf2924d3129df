package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
	"github.com/bnema/solana-autotransfer-cli/internal/ports/mocks"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu    sync.Mutex
	state *domain.PersistedState
}

func (s *memoryStore) Load(context.Context) (domain.PersistedState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return domain.PersistedState{}, domain.ErrStateNotFound
	}
	return s.state.Clone(), nil
}

func (s *memoryStore) Save(_ context.Context, state domain.PersistedState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cloned := state.Clone()
	s.state = &cloned
	return nil
}

type testAPI struct {
	router  http.Handler
	server  *httptest.Server
	remote  *mocks.MockMonitorService
	session *application.SessionService
	feed    *application.FeedPoller
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	remote := mocks.NewMockMonitorService(t)
	session := application.NewSessionService(remote, &memoryStore{}, logger)
	feed := application.NewFeedPoller(remote, time.Second, ports.SystemClock{}, logger)

	router := NewRouter(NewHandler(session, feed, logger))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return testAPI{router: router, server: server, remote: remote, session: session, feed: feed}
}

// serve bypasses the test server so the request context stays under the
// test's control.
func (a testAPI) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a testAPI) do(t *testing.T, method string, path string, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var payload map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(data, &payload))
	}
	return resp, payload
}

func anyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetStateDefaults(t *testing.T) {
	api := newTestAPI(t)

	resp, payload := api.do(t, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	config := payload["config"].(map[string]any)
	assert.Equal(t, "devnet", config["network"])
	assert.Equal(t, "native", config["tokenMintOption"])
	assert.Equal(t, "medium", config["gasFee"])
	assert.Equal(t, float64(10000), config["gasFeeMicro"])
	assert.Equal(t, float64(0), config["seedWords"])
	assert.Equal(t, []any{}, payload["activeWallets"])
	assert.Equal(t, "", payload["publicKey"])
}

func TestUpdateConfigDerivesPublicKey(t *testing.T) {
	api := newTestAPI(t)
	api.remote.EXPECT().DerivePublicKey(anyContext(), domain.Seed{"alpha", "beta"}).Return("pk-derived", nil).Once()

	resp, payload := api.do(t, http.MethodPut, "/api/config", `{"seed":"alpha beta","label":"vault","gasFee":"low"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	derivation := payload["derivation"].(map[string]any)
	assert.Equal(t, "pk-derived", derivation["publicKey"])
	assert.Equal(t, true, derivation["applied"])

	state := payload["state"].(map[string]any)
	assert.Equal(t, "pk-derived", state["publicKey"])
	config := state["config"].(map[string]any)
	assert.Equal(t, float64(2), config["seedWords"])
	assert.Equal(t, "vault", config["label"])
	assert.Equal(t, "low", config["gasFee"])
	assert.NotContains(t, config, "seed")
}

func TestUpdateConfigRejectsInvalidInput(t *testing.T) {
	api := newTestAPI(t)

	resp, payload := api.do(t, http.MethodPut, "/api/config", `{"network":"localnet"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], `unsupported network "localnet"`)

	resp, _ = api.do(t, http.MethodPut, "/api/config", `{"unknown":"field"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, domain.NetworkDevnet, api.session.Snapshot().Config.Network)
}

func TestStartMonitoringRequiresSeed(t *testing.T) {
	api := newTestAPI(t)

	resp, payload := api.do(t, http.MethodPost, "/api/wallets", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "seed is empty")
}

func TestStartAndStopMonitoring(t *testing.T) {
	api := newTestAPI(t)
	api.remote.EXPECT().DerivePublicKey(anyContext(), mock.Anything).Return("pk-derived", nil).Once()
	api.remote.EXPECT().StartMonitoring(anyContext(), ports.StartMonitoringRequest{
		Seed:    domain.Seed{"alpha", "beta"},
		Network: domain.NetworkDevnet,
		GasFee:  10000,
		Label:   "override",
	}).Return("pk-1", nil).Once()
	api.remote.EXPECT().StopMonitoring(anyContext(), "pk-1").Return(nil).Once()

	resp, _ := api.do(t, http.MethodPut, "/api/config", `{"seed":"alpha beta","label":"L1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, payload := api.do(t, http.MethodPost, "/api/wallets", `{"label":"override"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pk-1", payload["publicKey"])
	assert.Equal(t, "override", payload["label"])
	assert.Equal(t, "L1", api.session.Snapshot().Config.Label)

	resp, payload = api.do(t, http.MethodDelete, "/api/wallets/pk-1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["removed"])
	assert.Empty(t, api.session.Snapshot().ActiveWallets)
}

func TestStartMonitoringRemoteFailureIsBadGateway(t *testing.T) {
	api := newTestAPI(t)
	api.remote.EXPECT().DerivePublicKey(anyContext(), mock.Anything).Return("pk-derived", nil).Once()
	api.remote.EXPECT().StartMonitoring(anyContext(), mock.Anything).Return("", errors.New("upstream down")).Once()

	resp, _ := api.do(t, http.MethodPut, "/api/config", `{"seed":"alpha"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, payload := api.do(t, http.MethodPost, "/api/wallets", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, payload["error"], "upstream down")
	assert.Empty(t, api.session.Snapshot().ActiveWallets)
}

func TestGetTransactions(t *testing.T) {
	api := newTestAPI(t)
	api.remote.EXPECT().ListTransactions(anyContext()).Return([]domain.TransactionRecord{
		{Signature: "sig-1", From: "A", To: "B", Amount: 1.5, Token: "SOL", Status: domain.TransactionConfirmed},
	}, nil).Once()

	resp, payload := api.do(t, http.MethodGet, "/api/transactions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{}, payload["transactions"])
	assert.NotContains(t, payload, "updatedAt")

	_, err := api.feed.Tick(context.Background())
	require.NoError(t, err)

	resp, payload = api.do(t, http.MethodGet, "/api/transactions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	transactions := payload["transactions"].([]any)
	require.Len(t, transactions, 1)
	assert.Equal(t, "sig-1", transactions[0].(map[string]any)["signature"])
	assert.Equal(t, float64(1), payload["sequence"])
	assert.Contains(t, payload, "updatedAt")
}

func TestStreamTransactionsPushesReplacements(t *testing.T) {
	api := newTestAPI(t)
	api.remote.EXPECT().ListTransactions(anyContext()).Return([]domain.TransactionRecord{
		{Signature: "sig-1", Token: "SOL", Status: domain.TransactionPending},
	}, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(api.server.URL, "http") + "/ws/transactions"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer func() { _ = conn.CloseNow() }()

	var initial feedResponse
	require.NoError(t, wsjson.Read(ctx, conn, &initial))
	assert.Empty(t, initial.Transactions)
	assert.Equal(t, uint64(0), initial.Sequence)

	_, err = api.feed.Tick(ctx)
	require.NoError(t, err)

	var update feedResponse
	require.NoError(t, wsjson.Read(ctx, conn, &update))
	require.Len(t, update.Transactions, 1)
	assert.Equal(t, "sig-1", update.Transactions[0].Signature)
	assert.Equal(t, uint64(1), update.Sequence)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "done"))
}

func TestStartMonitoringSurvivesClientDisconnect(t *testing.T) {
	api := newTestAPI(t)
	api.remote.EXPECT().DerivePublicKey(anyContext(), mock.Anything).Return("pk-derived", nil).Once()

	resp, _ := api.do(t, http.MethodPut, "/api/config", `{"seed":"alpha beta"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api.remote.EXPECT().StartMonitoring(anyContext(), mock.Anything).RunAndReturn(
		func(callCtx context.Context, _ ports.StartMonitoringRequest) (string, error) {
			cancel()
			if err := callCtx.Err(); err != nil {
				return "", err
			}
			return "pk-1", nil
		}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/wallets", nil).WithContext(ctx)
	rec := api.serve(req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, api.session.Snapshot().ActiveWallets.Contains("pk-1"))
}

func TestStopMonitoringSurvivesClientDisconnect(t *testing.T) {
	api := newTestAPI(t)
	api.remote.EXPECT().DerivePublicKey(anyContext(), mock.Anything).Return("pk-derived", nil).Once()
	api.remote.EXPECT().StartMonitoring(anyContext(), mock.Anything).Return("pk-1", nil).Once()

	resp, _ := api.do(t, http.MethodPut, "/api/config", `{"seed":"alpha beta"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = api.do(t, http.MethodPost, "/api/wallets", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api.remote.EXPECT().StopMonitoring(anyContext(), "pk-1").RunAndReturn(
		func(callCtx context.Context, _ string) error {
			cancel()
			return callCtx.Err()
		}).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/wallets/pk-1", nil).WithContext(ctx)
	rec := api.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, api.session.Snapshot().ActiveWallets)
}

func TestStartMonitoringAcceptsChunkedEmptyBody(t *testing.T) {
	api := newTestAPI(t)
	api.remote.EXPECT().DerivePublicKey(anyContext(), mock.Anything).Return("pk-derived", nil).Once()
	api.remote.EXPECT().StartMonitoring(anyContext(), mock.Anything).Return("pk-1", nil).Once()

	resp, _ := api.do(t, http.MethodPut, "/api/config", `{"seed":"alpha"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/wallets", strings.NewReader(""))
	req.ContentLength = -1
	rec := api.serve(req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"publicKey":"pk-1"`)
}

func TestStartMonitoringRejectsMalformedBody(t *testing.T) {
	api := newTestAPI(t)

	resp, payload := api.do(t, http.MethodPost, "/api/wallets", `{"label":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "invalid request body")
}
