package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Chat history commands",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recorded exchanges",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded exchange",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := ensureServices(cmd.Context()); err != nil {
			return err
		}
		if err := historyService.Clear(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("History cleared.")
		return nil
	},
}

func init() {
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output history as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}
	records, err := historyService.List(cmd.Context())
	if err != nil {
		return err
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No history yet.")
		return nil
	}
	for _, rec := range records {
		cmd.Printf("[%s] %s\n", rec.CreatedAt.Local().Format(time.DateTime), rec.UserMessage)
		cmd.Printf("  -> %s\n", rec.BotResponse)
	}
	return nil
}
