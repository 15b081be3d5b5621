package handlers

import (
	"errors"

	"flameo-chatbot/internal/dto"
	"flameo-chatbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the chatbot
// @Description Returns the answer of the most similar corpus question and records the exchange
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "User message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	answer, err := h.chatService.Respond(c.UserContext(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrHistoryUnavailable) {
			h.logger.Warn("Failed to record chat exchange", zap.Error(err))
		} else {
			h.logger.Error("Chat failed", zap.Error(err))
		}
	}

	return c.JSON(dto.ChatResponse{Response: answer})
}

// ListQuestions godoc
// @Summary List corpus questions
// @Description Returns the normalized questions the chatbot can answer, in corpus order
// @Tags chat
// @Produce json
// @Success 200 {object} dto.QuestionsResponse
// @Router /api/questions [get]
func (h *ChatHandler) ListQuestions(c *fiber.Ctx) error {
	questions := h.chatService.ListQuestions()
	return c.JSON(dto.QuestionsResponse{
		Questions: questions,
		Count:     len(questions),
	})
}
