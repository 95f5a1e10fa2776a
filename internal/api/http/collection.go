package http

import (
	"net/http"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
	"ecowaste-backend/internal/service"
)

type CollectionHandler struct {
	collectionSvc service.CollectionService
	transitionSvc service.TransitionService
}

func NewCollectionHandler(collectionSvc service.CollectionService, transitionSvc service.TransitionService) *CollectionHandler {
	return &CollectionHandler{collectionSvc: collectionSvc, transitionSvc: transitionSvc}
}

type createCollectionRequest struct {
	WasteType     string `json:"waste_type"`
	Zone          string `json:"zone"`
	Address       string `json:"address"`
	Priority      string `json:"priority"`
	Notes         string `json:"notes"`
	ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD
}

func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	var req createCollectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	c := &domain.Collection{
		UserID:    claims.UserID,
		WasteType: domain.WasteType(req.WasteType),
		Zone:      req.Zone,
		Address:   req.Address,
		Priority:  domain.Priority(req.Priority),
		Notes:     req.Notes,
	}
	if req.ScheduledDate != "" {
		d, err := time.Parse("2006-01-02", req.ScheduledDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid scheduled_date, want YYYY-MM-DD"})
			return
		}
		c.ScheduledDate = &d
	}

	if err := h.collectionSvc.RequestCollection(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid collection id"})
		return
	}
	c, err := h.collectionSvc.GetCollection(r.Context(), claims.UserID, domain.Role(claims.Role), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type collectionListResponse struct {
	Collections []domain.Collection `json:"collections"`
	Pagination  pagination          `json:"pagination"`
}

func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	page, limit := pageParams(r, 50)
	filter := repository.CollectionFilter{
		Status:   domain.CollectionStatus(r.URL.Query().Get("status")),
		Zone:     r.URL.Query().Get("zone"),
		Page:     page,
		PageSize: limit,
	}
	collections, total, err := h.collectionSvc.ListCollections(r.Context(), claims.UserID, domain.Role(claims.Role), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collectionListResponse{
		Collections: collections,
		Pagination:  newPagination(total, filter.Page, filter.PageSize),
	})
}

type updateStatusRequest struct {
	Status          string `json:"status"`
	ResolutionNotes string `json:"resolution_notes,omitempty"`
}

// UpdateStatus routes a requested status change through the transition
// coordinator. Staff only; enforced by route middleware.
func (h *CollectionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid collection id"})
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	c, err := h.transitionSvc.TransitionCollection(r.Context(), claims.UserID, id, domain.CollectionStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid collection id"})
		return
	}
	if err := h.collectionSvc.DeleteCollection(r.Context(), claims.UserID, domain.Role(claims.Role), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
