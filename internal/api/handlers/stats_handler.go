package handlers

import (
	"flameo-chatbot/internal/dto"
	"flameo-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatsHandler struct {
	accessLog *service.AccessLogService
	logger    *zap.Logger
}

func NewStatsHandler(accessLog *service.AccessLogService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		accessLog: accessLog,
		logger:    logger,
	}
}

// Stats godoc
// @Summary Recent requests
// @Description The last 100 requests served, oldest first
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	logs := h.accessLog.List()
	return c.JSON(dto.StatsResponse{
		Logs:  logs,
		Count: len(logs),
	})
}

// ClearStats godoc
// @Summary Clear the access log
// @Tags stats
// @Security Bearer
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Router /stats/clear [post]
func (h *StatsHandler) ClearStats(c *fiber.Ctx) error {
	h.accessLog.Clear()
	h.logger.Info("Access log cleared")
	return c.SendStatus(fiber.StatusNoContent)
}
