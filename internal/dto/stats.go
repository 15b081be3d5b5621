package dto

import "flameo-chatbot/internal/models"

type StatsResponse struct {
	Logs  []models.AccessEntry `json:"logs"`
	Count int                  `json:"count"`
}
