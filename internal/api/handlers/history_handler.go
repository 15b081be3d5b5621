package handlers

import (
	"flameo-chatbot/internal/dto"
	"flameo-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HistoryHandler struct {
	historyService *service.HistoryService
	logger         *zap.Logger
}

func NewHistoryHandler(historyService *service.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// ListHistory godoc
// @Summary Chat history
// @Description Returns every recorded exchange in the order it happened
// @Tags history
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/history [get]
func (h *HistoryHandler) ListHistory(c *fiber.Ctx) error {
	records, err := h.historyService.List(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to list history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	return c.JSON(dto.HistoryResponse{
		History: records,
		Count:   len(records),
	})
}

// ClearHistory godoc
// @Summary Clear chat history
// @Description Deletes every recorded exchange
// @Tags history
// @Security Bearer
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/history [delete]
func (h *HistoryHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.historyService.Clear(c.UserContext()); err != nil {
		h.logger.Error("Failed to clear history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear history",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
