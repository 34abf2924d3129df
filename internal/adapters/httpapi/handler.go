// Package httpapi exposes the session and feed over a local HTTP API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/go-chi/chi/v5"
)

const maxRequestBytes = 1 << 20

type SessionManager interface {
	Snapshot() application.SessionSnapshot
	UpdateConfig(ctx context.Context, cmd application.UpdateConfigCommand) (domain.SessionConfig, *application.DerivationResult, error)
	Start(ctx context.Context, cfg domain.SessionConfig) (domain.ActiveWallet, error)
	Stop(ctx context.Context, publicKey string) (application.StopResult, error)
}

type FeedSource interface {
	Snapshot() application.FeedSnapshot
	Subscribe() (<-chan application.FeedSnapshot, func())
}

type Handler struct {
	session SessionManager
	feed    FeedSource
	logger  *slog.Logger
}

func NewHandler(session SessionManager, feed FeedSource, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{session: session, feed: feed, logger: logger.With("component", "httpapi")}
}

// RegisterRoutes registers the API and websocket routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Put("/config", h.UpdateConfig)
		r.Post("/wallets", h.StartMonitoring)
		r.Delete("/wallets/{publicKey}", h.StopMonitoring)
		r.Get("/transactions", h.GetTransactions)
	})
	r.Get("/ws/transactions", h.StreamTransactions)
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, newStateResponse(h.session.Snapshot()))
}

func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var body configRequest
	if !decodeBody(w, r, &body) {
		return
	}

	cmd, err := body.input().Command()
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	_, derivation, err := h.session.UpdateConfig(r.Context(), cmd)
	response := updateConfigResponse{State: newStateResponse(h.session.Snapshot())}
	if derivation != nil {
		response.Derivation = &derivationResponse{
			PublicKey: derivation.PublicKey,
			Applied:   derivation.Applied,
		}
		if err != nil {
			response.Derivation.Error = err.Error()
		}
	}

	JSON(w, http.StatusOK, response)
}

func (h *Handler) StartMonitoring(w http.ResponseWriter, r *http.Request) {
	var body configRequest
	if !decodeOptionalBody(w, r, &body) {
		return
	}

	overrides, err := body.input().Command()
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg, err := application.StartConfig(h.session.Snapshot().Config, overrides)
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	wallet, err := h.session.Start(r.Context(), cfg)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, newWalletResponse(wallet))
}

func (h *Handler) StopMonitoring(w http.ResponseWriter, r *http.Request) {
	publicKey := chi.URLParam(r, "publicKey")
	if publicKey == "" {
		Error(w, http.StatusBadRequest, "public key is required")
		return
	}

	result, err := h.session.Stop(r.Context(), publicKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, stopResponse{PublicKey: result.PublicKey, Removed: result.Removed})
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, newFeedResponse(h.feed.Snapshot()))
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEmptySeed):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRemote):
		Error(w, http.StatusBadGateway, err.Error())
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := newBodyDecoder(r).Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// decodeOptionalBody accepts an empty body as "no overrides". Chunked requests
// report ContentLength -1, so emptiness only shows up as io.EOF.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := newBodyDecoder(r).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func newBodyDecoder(r *http.Request) *json.Decoder {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()
	return decoder
}
