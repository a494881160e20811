package stream_notifications

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
)

const msgUnauthorized = "требуется аутентификация"

type Handler struct {
	stream       Stream
	pingInterval time.Duration
	logger       Logger
}

func NewHandler(stream Stream, pingInterval time.Duration, logger Logger) *Handler {
	return &Handler{
		stream:       stream,
		pingInterval: pingInterval,
		logger:       logger,
	}
}

// Handle GET /api/v1/notifications/stream
// Server-Sent Events: держит соединение открытым и пишет события
// пользователя в формате "data: <json>\n\n". При отсутствии событий
// периодически шлет ping, чтобы соединение не закрывалось по таймауту.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /notifications/stream - Streaming not supported by response writer")
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, unsubscribe := h.stream.Subscribe(claims.UserID)
	defer unsubscribe()

	h.logger.Info("GET /notifications/stream - Stream opened: user=%s", claims.UserID)

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /notifications/stream - Stream closed: user=%s", claims.UserID)
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()

		case <-ping.C:
			fmt.Fprintf(w, "data: {\"type\": \"ping\", \"timestamp\": %q}\n\n",
				time.Now().UTC().Format(time.RFC3339))
			flusher.Flush()
		}
	}
}
