package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flameo-chatbot/internal/dto"
	"flameo-chatbot/internal/service"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask a single question",
	Long: `Prints the answer of the corpus question most similar to the message.
The exchange is recorded in the chat history.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	answer, err := chatService.Respond(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		if !errors.Is(err, service.ErrHistoryUnavailable) {
			return err
		}
		appLogger.Warn("Failed to record chat exchange", zap.Error(err))
	}

	if askJSON {
		data, err := json.MarshalIndent(dto.ChatResponse{Response: answer}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}
	cmd.Println(answer)
	return nil
}
