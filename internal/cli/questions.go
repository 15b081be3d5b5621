package cli

import (
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions the corpus can answer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := ensureServices(cmd.Context()); err != nil {
			return err
		}
		questions := chatService.ListQuestions()
		if len(questions) == 0 {
			cmd.Println("The corpus is empty.")
			return nil
		}
		for i, q := range questions {
			cmd.Printf("%3d. %s\n", i+1, q)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}
