package nourish

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/provider/assistant"
	"github.com/probuilddigital1-star/nourish/internal/store"
)

var (
	chatLog  bool
	chatMeal string
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the AI nutrition assistant",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Assistant.APIKey == "" {
			return fmt.Errorf("missing ANTHROPIC_API_KEY (set it in the environment or a .env file)")
		}

		client := assistant.New(cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.BaseURL)
		reply, err := client.Chat(context.Background(), nil, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply.Message)

		return withStore(func(s *store.Store) error {
			before := len(s.Achievements())
			s.IncrementAIUse()
			if reply.Food != nil {
				printRecord(cmd.OutOrStdout(), 0, *reply.Food)
				if chatLog {
					entry, err := logRecord(s, *reply.Food, model.MealType(chatMeal))
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) to %s\n", entry.Name, entry.Calories, entry.MealType)
				}
			}
			for _, line := range unlockMessages(s, before) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVar(&chatLog, "log", false, "Log the suggested food, if any")
	chatCmd.Flags().StringVar(&chatMeal, "meal", string(model.MealSnack), "Meal when logging the suggestion")
}
