package mcp

import (
	"context"
	"errors"
	"testing"

	"flameo-chatbot/internal/models"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func historyRequest() *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: historyURI,
		},
	}
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("without history port returns empty array", func(t *testing.T) {
		server, err := NewServer(&Ports{Chat: &mockResponder{}}, "test", zap.NewNop())
		require.NoError(t, err)

		result, err := server.handleHistoryResource(ctx, historyRequest())
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	})

	t.Run("lists records", func(t *testing.T) {
		history := &mockHistory{records: []*models.ChatRecord{models.NewChatRecord("xin chào", "Chào bạn!")}}
		server, err := NewServer(&Ports{Chat: &mockResponder{}, History: history}, "test", zap.NewNop())
		require.NoError(t, err)

		result, err := server.handleHistoryResource(ctx, historyRequest())
		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"user_message": "xin chào"`)
		assert.Equal(t, historyURI, result.Contents[0].URI)
	})

	t.Run("history error is returned", func(t *testing.T) {
		history := &mockHistory{err: errors.New("locked")}
		server, err := NewServer(&Ports{Chat: &mockResponder{}, History: history}, "test", zap.NewNop())
		require.NoError(t, err)

		_, err = server.handleHistoryResource(ctx, historyRequest())
		assert.Error(t, err)
	})
}
