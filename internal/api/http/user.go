package http

import (
	"net/http"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	user, err := h.userSvc.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	stats, err := h.userSvc.GetDashboardStats(r.Context(), claims.UserID, domain.Role(claims.Role))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
