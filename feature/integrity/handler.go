package integrity

import (
	"recon-manager/core/logger"
	"recon-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/ledger", h.HandleLedgerCheck)
	group.Get("/reports", h.HandleReportsCheck)
}

// respond answers 200 for a healthy section and 503 otherwise.
func respond(c *fiber.Ctx, healthy bool, body any) error {
	if !healthy {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return c.JSON(body)
}

func sectionHealthy(s Section) bool {
	return s.Status != StatusFailed && s.Status != StatusError
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the archive bucket, the run ledger schema and the stored reports. Every check is skipped when the archive is disabled.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the archive bucket if it is missing"
// @Success 200 {object} Report "Combined Report"
// @Failure 503 {object} Report "Combined Report With Failures"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.RunAll(c.UserContext(), utils.ToBool(c.Query("fix")))
	if !report.Healthy() {
		l.Warn("Integrity checks reported problems",
			zap.String("storage", report.Storage.Status),
			zap.String("ledger", report.Ledger.Status),
			zap.String("reports", report.Reports.Status))
	}
	return respond(c, report.Healthy(), report)
}

// HandleStorageCheck checks and optionally fixes the archive bucket.
// @Summary Check Archive Storage
// @Description Checks that the archive bucket exists. Optionally creates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket if it is missing"
// @Success 200 {object} Section "Storage Report"
// @Failure 503 {object} Section "Storage Report With Failure"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))
	if fix {
		l.Info("Attempting to fix archive storage")
	}

	section := h.service.CheckStorage(c.UserContext(), fix)
	if section.Status == StatusError {
		l.Error("Storage check failed", zap.String("error", section.Error))
	}
	return respond(c, sectionHealthy(section), section)
}

// HandleLedgerCheck checks the run ledger schema.
// @Summary Check Run Ledger Schema
// @Description Checks if the reconciliation_runs table matches the expected columns and types.
// @Tags integrity
// @Produce json
// @Success 200 {object} Section "Ledger Report"
// @Failure 503 {object} Section "Ledger Report With Failure"
// @Router /integrity/ledger [get]
func (h *Handler) HandleLedgerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting ledger schema check")

	section := h.service.CheckLedger()
	return respond(c, sectionHealthy(section), section)
}

// HandleReportsCheck checks that archived reports are still in storage.
// @Summary Check Archived Reports
// @Description Verifies that the newest archived runs still have their report object.
// @Tags integrity
// @Produce json
// @Success 200 {object} Section "Reports Report"
// @Failure 503 {object} Section "Reports Report With Failure"
// @Router /integrity/reports [get]
func (h *Handler) HandleReportsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting archived reports check")

	section := h.service.CheckReports(c.UserContext())
	return respond(c, sectionHealthy(section), section)
}
