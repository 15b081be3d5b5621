package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
	Count     int      `json:"count"`
}
