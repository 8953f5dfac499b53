package handlers

import (
	"net/http"

	"anniversary-backend/application/resolver"
	"anniversary-backend/domain/profile"
	"anniversary-backend/pkg/common"

	"go.uber.org/zap"
)

// UserHandler exposes the resolved profile as plain JSON.
type UserHandler struct {
	resolver *resolver.Resolver
	logger   *zap.Logger
}

// NewUserHandler creates a new user data handler
func NewUserHandler(res *resolver.Resolver, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		resolver: res,
		logger:   logger,
	}
}

// userResponse is the wire shape of a resolved profile
type userResponse struct {
	FID                string `json:"fid"`
	CreatedAtTimestamp int64  `json:"createdAtTimestamp"`
	Username           string `json:"username,omitempty"`
	ProfileName        string `json:"profileName,omitempty"`
	ProfileDisplayName string `json:"profileDisplayName,omitempty"`
	ProfileImage       string `json:"profileImage,omitempty"`
}

// Get handles GET /api/farcaster-user
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	fid, err := profile.ParseFID(r.URL.Query().Get("fid"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	p, err := h.resolver.Resolve(r.Context(), fid)
	if err != nil {
		h.logger.Error("user data resolution failed",
			zap.String("fid", fid.String()),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, userResponse{
		FID:                p.FID.String(),
		CreatedAtTimestamp: p.CreatedAt.Unix(),
		Username:           p.Username,
		ProfileName:        p.ProfileName,
		ProfileDisplayName: p.ProfileDisplayName,
		ProfileImage:       p.ProfileImage,
	})
}
