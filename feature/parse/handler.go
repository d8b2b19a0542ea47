package parse

import (
	"errors"

	"fioparser/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Request is the body of POST /api/parse.
type Request struct {
	FullName string `json:"fullName"`
}

// Handler handles HTTP requests for name parsing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the parse routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Post("/parse", h.HandleParse)
	group.Get("/parse", h.HandleParseQuery)
}

// HandleParse parses the name in the request body.
// @Summary Parse Full Name
// @Description Splits a full name into surname, given name and patronymic.
// @Tags parse
// @Accept json
// @Produce json
// @Param request body parse.Request true "Full name"
// @Success 200 {object} map[string]interface{} "success and data"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Router /api/parse [post]
func (h *Handler) HandleParse(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}
	return h.respond(c, req.FullName)
}

// HandleParseQuery parses the name in the query string.
// @Summary Parse Full Name (query)
// @Tags parse
// @Produce json
// @Param name query string true "Full name"
// @Success 200 {object} map[string]interface{} "success and data"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Router /api/parse [get]
func (h *Handler) HandleParseQuery(c *fiber.Ctx) error {
	return h.respond(c, c.Query("name"))
}

func (h *Handler) respond(c *fiber.Ctx, fullName string) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Parse(c.Context(), fullName)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrEmptyName) || errors.Is(err, ErrNameTooLong) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	l.Debug("Name parsed",
		zap.String("last_name", result.LastName),
		zap.String("first_name", result.FirstName),
		zap.String("middle_name", result.MiddleName),
	)

	return c.JSON(fiber.Map{"success": true, "data": result})
}
