package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jokerbot/internal/config"
	"jokerbot/internal/journal"
)

var statsFlags struct {
	chatID int64
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show prediction outcomes from the journal",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int64Var(&statsFlags.chatID, "chat-id", 0, "Restrict to one chat (0 = all chats)")
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if rootFlags.configPath != "" {
		loaded, err := config.Load(rootFlags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	stats, err := j.Stats(statsFlags.chatID)
	if err != nil {
		return fmt.Errorf("query stats: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Predictions: %d\n", stats.Total)
	fmt.Fprintf(out, "Correct:     %d\n", stats.Correct)
	fmt.Fprintf(out, "Incorrect:   %d\n", stats.Incorrect)
	fmt.Fprintf(out, "Failed:      %d\n", stats.Failed)
	fmt.Fprintf(out, "Pending:     %d\n", stats.Pending)
	fmt.Fprintf(out, "Accuracy:    %.1f%%\n", stats.Accuracy)
	return nil
}
