package contacts

import (
	"errors"

	"fioparser/core/logger"
	"fioparser/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for contact synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the contact sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/status", h.HandleStatus)
	app.Get("/debug/contacts", h.HandleDebugContacts)
	app.Get("/confirm-full-run", h.HandleConfirmFullRun)
	app.Delete("/full-run", h.HandleStopFullRun)
}

// HandleStatus reports the sync state.
// @Summary Sync Status
// @Description Returns authorization state, last check time, contacts in flight and full run state.
// @Tags contacts
// @Produce json
// @Success 200 {object} contacts.Status
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status(c.Context()))
}

// HandleDebugContacts runs one recent-contacts check synchronously.
// @Summary Check Recent Contacts
// @Description Lists contacts created since the last check and reconciles them now.
// @Tags contacts
// @Produce json
// @Success 200 {object} reconcile.BatchSummary
// @Failure 409 {object} map[string]string "Check already running"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /debug/contacts [get]
func (h *Handler) HandleDebugContacts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Manual contact check triggered")

	summary, err := h.service.CheckRecent(c.Context())
	if err != nil {
		if errors.Is(err, ErrCheckInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Manual contact check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(summary)
}

// HandleConfirmFullRun arms or starts the full resync.
// @Summary Full Resync
// @Description The first call arms a full resync of every contact. Calling again with confirm=1 starts it in the background.
// @Tags contacts
// @Produce json
// @Param confirm query string false "Set to 1 to confirm an armed run"
// @Success 200 {object} map[string]string "Phase"
// @Failure 400 {object} map[string]string "Confirmation failed"
// @Failure 409 {object} map[string]string "Full run already running"
// @Router /confirm-full-run [get]
func (h *Handler) HandleConfirmFullRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	phase, err := h.service.RequestFullRun(utils.ToBool(c.Query("confirm")))
	switch {
	case err == nil:
	case errors.Is(err, ErrFullRunActive):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error(), "phase": phase})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "phase": phase})
	}

	if phase == PhaseArmed {
		l.Warn("Full run requested, awaiting confirmation")
		return c.JSON(fiber.Map{
			"phase":   phase,
			"message": "All contacts will be processed. Call again with ?confirm=1 to start.",
		})
	}

	l.Info("Full run confirmed")
	return c.JSON(fiber.Map{"phase": phase, "message": "Full run started."})
}

// HandleStopFullRun stops a running full resync or disarms a pending one.
// @Summary Stop Full Resync
// @Tags contacts
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "No full run"
// @Router /full-run [delete]
func (h *Handler) HandleStopFullRun(c *fiber.Ctx) error {
	if err := h.service.StopFullRun(); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "stopping"})
}
