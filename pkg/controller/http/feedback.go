package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/feedpulse/feedpulse/pkg/domain/interfaces"
	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

// defaultReportListLimit caps the report listing when no limit is given
const defaultReportListLimit = 10

// FeedbackHandler handles the feedback and report API routes
type FeedbackHandler struct {
	ingestUC interfaces.Ingest
	reportUC interfaces.Report
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(ingestUC interfaces.Ingest, reportUC interfaces.Report) *FeedbackHandler {
	return &FeedbackHandler{
		ingestUC: ingestUC,
		reportUC: reportUC,
	}
}

type submitFeedbackRequest struct {
	Description string `json:"description"`
	Score       *int   `json:"score"`
}

// HandleSubmitFeedback handles POST /api/feedback
func (h *FeedbackHandler) HandleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, goerr.Wrap(model.ErrInvalidFeedback, "invalid request body"))
		return
	}
	if req.Score == nil {
		writeError(ctx, w, goerr.Wrap(model.ErrInvalidFeedback, "score is required"))
		return
	}

	feedback, err := h.ingestUC.SubmitFeedback(ctx, req.Description, *req.Score)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, feedback)
}

// HandleGetFeedback handles GET /api/feedback/{id}
func (h *FeedbackHandler) HandleGetFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := types.FeedbackID(chi.URLParam(r, "id"))
	feedback, err := h.ingestUC.GetFeedback(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, feedback)
}

// HandleListReports handles GET /api/reports
func (h *FeedbackHandler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultReportListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(ctx, w, goerr.Wrap(model.ErrInvalidFeedback, "invalid limit",
				goerr.V("limit", v)))
			return
		}
		limit = n
	}

	reports, err := h.reportUC.ListRecentReports(ctx, limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"reports": reports,
	})
}

// HandleGetReport handles GET /api/reports/{id}
func (h *FeedbackHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := types.ReportID(chi.URLParam(r, "id"))
	report, err := h.reportUC.GetReport(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}
