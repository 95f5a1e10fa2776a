package http

import (
	"net/http"

	"ecowaste-backend/internal/service"
)

type RewardHandler struct {
	rewardSvc service.RewardService
}

func NewRewardHandler(rewardSvc service.RewardService) *RewardHandler {
	return &RewardHandler{rewardSvc: rewardSvc}
}

func (h *RewardHandler) List(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardSvc.ListRewards(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rewards": rewards})
}

func (h *RewardHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid reward id"})
		return
	}
	code, err := h.rewardSvc.Redeem(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "code": code})
}

func (h *RewardHandler) ListRedemptions(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	redemptions, err := h.rewardSvc.ListRedemptions(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"redemptions": redemptions})
}
