package dto

import "flameo-chatbot/internal/models"

type HistoryResponse struct {
	History []*models.ChatRecord `json:"history"`
	Count   int                  `json:"count"`
}
