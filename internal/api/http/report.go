package http

import (
	"net/http"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
	"ecowaste-backend/internal/service"
)

type ReportHandler struct {
	reportSvc     service.ReportService
	transitionSvc service.TransitionService
}

func NewReportHandler(reportSvc service.ReportService, transitionSvc service.TransitionService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, transitionSvc: transitionSvc}
}

type createReportRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Priority    string `json:"priority"`
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	var req createReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rep := &domain.Report{
		UserID:      claims.UserID,
		Type:        domain.ReportType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Priority:    domain.Priority(req.Priority),
	}
	if err := h.reportSvc.FileReport(r.Context(), rep); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid report id"})
		return
	}
	rep, err := h.reportSvc.GetReport(r.Context(), claims.UserID, domain.Role(claims.Role), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

type reportListResponse struct {
	Reports    []domain.Report `json:"reports"`
	Pagination pagination      `json:"pagination"`
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	page, limit := pageParams(r, 50)
	filter := repository.ReportFilter{
		Status:   domain.ReportStatus(r.URL.Query().Get("status")),
		Page:     page,
		PageSize: limit,
	}
	reports, total, err := h.reportSvc.ListReports(r.Context(), claims.UserID, domain.Role(claims.Role), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reportListResponse{
		Reports:    reports,
		Pagination: newPagination(total, filter.Page, filter.PageSize),
	})
}

// UpdateStatus routes a report status change through the transition
// coordinator. Staff only; enforced by route middleware.
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid report id"})
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	rep, err := h.transitionSvc.TransitionReport(r.Context(), claims.UserID, id, domain.ReportStatus(req.Status), req.ResolutionNotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}
