package reconciliation

import (
	"fmt"
	"mime/multipart"

	"recon-manager/core/logger"
	"recon-manager/core/middleware/rayid"
	"recon-manager/core/reconcile"
	"recon-manager/core/tabular"
	"recon-manager/core/workbook"
	"recon-manager/feature/reconciliation/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Form field names of the three uploads.
const (
	FieldA = "file_a"
	FieldB = "file_b"
	FieldC = "file_c"
)

// ReportFilename is the download name of the report.
const ReportFilename = "reconciliation_output.xlsx"

// SummaryResponse is the JSON form of a run.
type SummaryResponse struct {
	RunID    string            `json:"run_id"`
	Archived bool              `json:"archived"`
	Labels   reconcile.Labels  `json:"labels"`
	Summary  reconcile.Summary `json:"summary"`
}

// RunsResponse is a page of the run ledger.
type RunsResponse struct {
	Total int64        `json:"total"`
	Runs  []models.Run `json:"runs"`
}

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Post("/", h.HandleReconcile)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
	group.Get("/runs/:id/report", h.HandleGetReport)
}

// HandleReconcile reconciles three uploaded files.
// @Summary Reconcile Transactions
// @Description Reconciles the primary ledger (A) against the order-keyed (B) and merchant-transaction-keyed (C) processor exports. Returns the xlsx report, or the summary with format=json.
// @Tags reconciliation
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param file_a formData file true "Primary ledger (.csv or .xlsx)"
// @Param file_b formData file true "Order-keyed processor export"
// @Param file_c formData file true "Merchant-transaction-keyed processor export"
// @Param format query string false "Set to json for a summary instead of the workbook"
// @Success 200 {object} SummaryResponse "Run Summary"
// @Failure 400 {object} ErrorResponse "Invalid Upload"
// @Failure 413 {object} ErrorResponse "Upload Too Large"
// @Failure 422 {object} ErrorResponse "Unreadable File"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	form, err := c.MultipartForm()
	if err != nil {
		l.Warn("Invalid multipart form", zap.Error(err))
		return h.fail(c, l, fiber.NewError(fiber.StatusBadRequest, "Please upload all 3 files"))
	}

	labels := h.service.Labels()
	var in Uploads
	for _, slot := range []struct {
		field  string
		source string
		dst    *tabular.File
	}{
		{FieldA, labels.A, &in.A},
		{FieldB, labels.B, &in.B},
		{FieldC, labels.C, &in.C},
	} {
		fh := firstFile(form, slot.field)
		if fh == nil {
			return h.fail(c, l, &reconcile.ValidationError{
				Source: slot.source,
				Field:  "file",
				Reason: fmt.Sprintf("Please upload all 3 files (missing %s)", slot.field),
			})
		}
		*slot.dst = tabular.FromFileHeader(slot.source, fh)
	}

	out, err := h.service.Reconcile(c.UserContext(), in, rayid.Get(c))
	if err != nil {
		return h.fail(c, l, err)
	}

	if c.Query("format") == "json" {
		return c.JSON(SummaryResponse{
			RunID:    out.ID,
			Archived: out.Archived,
			Labels:   out.Result.Labels,
			Summary:  out.Result.Summary,
		})
	}

	c.Set(fiber.HeaderContentType, workbook.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, ReportFilename))
	c.Set("X-Run-ID", out.ID)
	return c.Send(out.Report)
}

// HandleListRuns lists archived runs.
// @Summary List Archived Runs
// @Description Lists archived reconciliation runs, newest first. Requires the archive to be enabled.
// @Tags reconciliation
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} RunsResponse "Run Ledger"
// @Failure 404 {object} ErrorResponse "Archive Disabled"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /reconcile/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	archive := h.service.Archive()
	if archive == nil {
		return h.fail(c, l, fiber.NewError(fiber.StatusNotFound, "run archive is disabled"))
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	runs, total, err := archive.Runs(c.UserContext(), limit, offset)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(RunsResponse{Total: total, Runs: runs})
}

// HandleGetRun returns one archived run.
// @Summary Get Archived Run
// @Tags reconciliation
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} models.Run "Run"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /reconcile/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	archive := h.service.Archive()
	if archive == nil {
		return h.fail(c, l, fiber.NewError(fiber.StatusNotFound, "run archive is disabled"))
	}

	run, err := archive.Run(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(run)
}

// HandleGetReport downloads the report of an archived run.
// @Summary Download Archived Report
// @Tags reconciliation
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Run ID"
// @Success 200 {file} file "Report"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /reconcile/runs/{id}/report [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	archive := h.service.Archive()
	if archive == nil {
		return h.fail(c, l, fiber.NewError(fiber.StatusNotFound, "run archive is disabled"))
	}

	run, body, err := archive.Open(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, l, err)
	}

	c.Set(fiber.HeaderContentType, workbook.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, run.ID))
	// Fiber closes the stream once it has been written.
	return c.SendStream(body, int(run.ReportSize))
}

// fail writes the error response and logs it at a level matching its status.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status, body := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Request failed", zap.Error(err))
	} else {
		l.Warn("Request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(body)
}

func firstFile(form *multipart.Form, field string) *multipart.FileHeader {
	files := form.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}
