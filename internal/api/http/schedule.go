package http

import (
	"net/http"

	"ecowaste-backend/internal/service"
)

type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
	userSvc     service.UserService
}

func NewScheduleHandler(scheduleSvc service.ScheduleService, userSvc service.UserService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc, userSvc: userSvc}
}

// List returns the weekly pickup schedule for the requested zone, defaulting
// to the caller's own zone.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	if zone == "" {
		claims, _ := claimsFromContext(r.Context())
		user, err := h.userSvc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		zone = user.Zone
	}
	schedules, err := h.scheduleSvc.GetZoneSchedule(r.Context(), zone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"zone": zone, "schedules": schedules})
}
