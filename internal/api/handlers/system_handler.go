package handlers

import (
	"flameo-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SystemHandler struct {
	systemService *service.SystemService
}

func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Health godoc
// @Summary Health check
// @Description Process uptime, goroutines, memory and corpus size
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.systemService.Health())
}

// Info godoc
// @Summary Service info
// @Tags system
// @Produce json
// @Success 200 {object} dto.InfoResponse
// @Router /api/info [get]
func (h *SystemHandler) Info(c *fiber.Ctx) error {
	return c.JSON(h.systemService.Info())
}

// Welcome is served on "/" when no web interface is installed.
func (h *SystemHandler) Welcome(c *fiber.Ctx) error {
	info := h.systemService.Info()
	return c.JSON(fiber.Map{
		"message": info.Message,
		"version": info.Version,
		"chat":    "POST /api/chat",
		"docs":    "/swagger/index.html",
	})
}
