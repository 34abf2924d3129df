package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const wsWriteTimeout = 5 * time.Second

// StreamTransactions pushes the current feed on connect and again after
// every replacement until the client goes away.
func (h *Handler) StreamTransactions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("op", "stream", "remote_addr", r.RemoteAddr)

	ws, err := websocket.Accept(w, r, nil)
	if err != nil {
		logger.Warn("accept websocket", "error", err)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "stream ended"); closeErr != nil {
			logger.Debug("close websocket", "error", closeErr)
		}
	}()

	updates, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	// Client messages are ignored; CloseRead cancels ctx when the peer leaves.
	ctx := ws.CloseRead(r.Context())

	if err := writeFeed(ctx, ws, newFeedResponse(h.feed.Snapshot())); err != nil {
		logger.Debug("write initial feed", "error", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			if err := writeFeed(ctx, ws, newFeedResponse(snapshot)); err != nil {
				logger.Debug("write feed update", "error", err)
				return
			}
		}
	}
}

func writeFeed(ctx context.Context, ws *websocket.Conn, payload feedResponse) error {
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, ws, payload)
}
