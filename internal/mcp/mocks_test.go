package mcp

import (
	"context"

	"flameo-chatbot/internal/models"
)

type mockResponder struct {
	answer    string
	err       error
	questions []string
	asked     []string
}

func (m *mockResponder) Respond(_ context.Context, rawInput string) (string, error) {
	m.asked = append(m.asked, rawInput)
	return m.answer, m.err
}

func (m *mockResponder) ListQuestions() []string {
	return m.questions
}

type mockHistory struct {
	records []*models.ChatRecord
	err     error
}

func (m *mockHistory) List(context.Context) ([]*models.ChatRecord, error) {
	return m.records, m.err
}
