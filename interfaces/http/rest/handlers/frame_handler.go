package handlers

import (
	"net/http"

	"anniversary-backend/application/frames"
	"anniversary-backend/pkg/common"
	"anniversary-backend/pkg/observability"
	"anniversary-backend/pkg/utils"

	"go.uber.org/zap"
)

const maxEnvelopeBytes = 1 << 16

// FrameHandler handles frame protocol requests
type FrameHandler struct {
	builder *frames.Builder
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewFrameHandler creates a new frame handler
func NewFrameHandler(builder *frames.Builder, metrics *observability.Metrics, logger *zap.Logger) *FrameHandler {
	return &FrameHandler{
		builder: builder,
		metrics: metrics,
		logger:  logger,
	}
}

// Initial handles GET /frames. First render, no side effects.
func (h *FrameHandler) Initial(w http.ResponseWriter, r *http.Request) {
	response := h.builder.Initial()
	h.metrics.ObserveFrameView(response.State)
	common.RespondJSON(w, http.StatusOK, response)
}

// Action handles POST /frames. The envelope's payload is untrusted by
// protocol convention; a body that is not even a valid envelope is rejected
// outright, while resolution failures render the error view.
func (h *FrameHandler) Action(w http.ResponseWriter, r *http.Request) {
	var env frames.ActionEnvelope
	if err := common.ParseJSONBody(r, &env, maxEnvelopeBytes); err != nil {
		h.logger.Warn("invalid frame envelope", zap.Error(err))
		common.RespondError(w, http.StatusBadRequest, "INVALID_ENVELOPE", "invalid frame message")
		return
	}

	if err := utils.ValidateStruct(env); err != nil {
		h.logger.Warn("frame envelope failed validation", zap.Error(err))
		common.RespondError(w, http.StatusBadRequest, "INVALID_ENVELOPE", err.Error())
		return
	}

	response := h.builder.HandleAction(r.Context(), env)
	h.metrics.ObserveFrameView(response.State)
	common.RespondJSON(w, http.StatusOK, response)
}
