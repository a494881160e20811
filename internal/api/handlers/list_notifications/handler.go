package list_notifications

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/notifications/models"
)

const (
	msgUnauthorized = "требуется аутентификация"

	defaultLimit = 50
	maxLimit     = 200
)

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications?unread=true&limit=...&offset=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	req := &models.ListNotificationsRequest{
		UserID:     claims.UserID,
		UnreadOnly: query.Get("unread") == "true",
		Limit:      defaultLimit,
	}
	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.ParseUint(raw, 10, 64); err == nil && limit > 0 {
			req.Limit = limit
			if req.Limit > maxLimit {
				req.Limit = maxLimit
			}
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if offset, err := strconv.ParseUint(raw, 10, 64); err == nil {
			req.Offset = offset
		}
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: user=%s, error=%v", claims.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
