package handlers

import (
	"fmt"
	"net/http"

	"anniversary-backend/application/ports"
	"anniversary-backend/infrastructure/render"
	apperrors "anniversary-backend/pkg/errors"

	"go.uber.org/zap"
)

// OGHandler renders the social-card image. The card is a pure function of
// its query parameters.
type OGHandler struct {
	logger *zap.Logger
}

// NewOGHandler creates a new OG image handler
func NewOGHandler(logger *zap.Logger) *OGHandler {
	return &OGHandler{logger: logger}
}

// Render handles GET /api/og
func (h *OGHandler) Render(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ports.RenderParams{
		FID:          q.Get("fid"),
		JoinDate:     q.Get("joinDate"),
		Anniversary:  q.Get("anniversary"),
		IsError:      q.Get("isError") == "true",
		ErrorMessage: q.Get("errorMessage"),
		IsInitial:    q.Get("isInitial") == "true",
		AwesomeText:  q.Get("awesomeText"),
		Username:     q.Get("username"),
	}

	svg := h.compose(params)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(svg))
}

// compose never fails the request: a panicking composition falls back to the
// placeholder card.
func (h *OGHandler) compose(params ports.RenderParams) (svg string) {
	defer func() {
		if rec := recover(); rec != nil {
			err := apperrors.NewRenderFailureError(fmt.Errorf("card composition panicked: %v", rec))
			h.logger.Error("serving placeholder card", zap.Error(err))
			svg = render.PlaceholderSVG
		}
	}()
	return render.ComposeSVG(params)
}
