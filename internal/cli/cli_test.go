package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flameo-chatbot/internal/models"
	"flameo-chatbot/internal/service"
	"flameo-chatbot/pkg/auth"
	"flameo-chatbot/pkg/config"
)

type mockChat struct {
	answer    string
	err       error
	questions []string
	asked     []string
}

func (m *mockChat) Respond(_ context.Context, rawInput string) (string, error) {
	m.asked = append(m.asked, rawInput)
	return m.answer, m.err
}

func (m *mockChat) ListQuestions() []string { return m.questions }

func (m *mockChat) CorpusSize() int { return len(m.questions) }

type mockHistory struct {
	records []*models.ChatRecord
	cleared bool
}

func (m *mockHistory) List(context.Context) ([]*models.ChatRecord, error) { return m.records, nil }

func (m *mockHistory) Clear(context.Context) error {
	m.cleared = true
	m.records = nil
	return nil
}

func setupTestServices(chat *mockChat, history *mockHistory) func() {
	prevCfg, prevChat, prevHistory := cfg, chatService, historyService
	cfg = &config.Config{Admin: config.AdminConfig{JWTSecret: "secret", TokenTTL: time.Hour}}
	chatService = chat
	historyService = history
	return func() {
		cfg, chatService, historyService = prevCfg, prevChat, prevHistory
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestAskCmd(t *testing.T) {
	chat := &mockChat{answer: "Chào bạn!"}
	defer setupTestServices(chat, &mockHistory{})()

	out, err := execute(t, "ask", "xin", "chào")
	require.NoError(t, err)
	assert.Equal(t, "Chào bạn!\n", out)
	assert.Equal(t, []string{"xin chào"}, chat.asked)
}

func TestAskCmd_JSON(t *testing.T) {
	defer setupTestServices(&mockChat{answer: "Chào bạn!"}, &mockHistory{})()
	defer func() { askJSON = false }()

	out, err := execute(t, "ask", "--json", "xin chào")
	require.NoError(t, err)
	assert.Contains(t, out, `"response": "Chào bạn!"`)
}

func TestAskCmd_HistoryFailureStillPrints(t *testing.T) {
	chat := &mockChat{answer: "Chào bạn!", err: fmt.Errorf("%w: locked", service.ErrHistoryUnavailable)}
	defer setupTestServices(chat, &mockHistory{})()

	out, err := execute(t, "ask", "xin chào")
	require.NoError(t, err)
	assert.Contains(t, out, "Chào bạn!")
}

func TestAskCmd_RequiresMessage(t *testing.T) {
	defer setupTestServices(&mockChat{}, &mockHistory{})()

	_, err := execute(t, "ask")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestQuestionsCmd(t *testing.T) {
	defer setupTestServices(&mockChat{questions: []string{"xin chao", "ban la ai"}}, &mockHistory{})()

	out, err := execute(t, "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "1. xin chao")
	assert.Contains(t, out, "2. ban la ai")
}

func TestHistoryCmds(t *testing.T) {
	history := &mockHistory{records: []*models.ChatRecord{models.NewChatRecord("xin chào", "Chào bạn!")}}
	defer setupTestServices(&mockChat{}, history)()

	out, err := execute(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "xin chào")
	assert.Contains(t, out, "-> Chào bạn!")

	out, err = execute(t, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared.")
	assert.True(t, history.cleared)

	out, err = execute(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No history yet.")
}

func TestTokenCmd(t *testing.T) {
	defer setupTestServices(&mockChat{}, &mockHistory{})()

	out, err := execute(t, "token", "--subject", "ops")
	require.NoError(t, err)

	claims, err := auth.NewJWTManager("secret", time.Hour).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
}

func TestTokenCmd_RequiresSecret(t *testing.T) {
	defer setupTestServices(&mockChat{}, &mockHistory{})()
	cfg.Admin.JWTSecret = ""

	_, err := execute(t, "token")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	defer setupTestServices(&mockChat{}, &mockHistory{})()
	original := version
	version = "1.2.3"
	defer func() { version = original }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "flameo version 1.2.3")
}

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}
