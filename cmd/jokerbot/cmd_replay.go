package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jokerbot/internal/replay"
)

var replayFlags struct {
	verbose bool
}

var replayCmd = &cobra.Command{
	Use:   "replay <transcript.json>",
	Short: "Run a recorded chat transcript through the engine",
	Long: "Replay feeds a JSON transcript of chat messages through a fresh engine\n" +
		"and prints what the bot would have done. Transcripts with an 'expected'\n" +
		"list are also verified step by step.",
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&replayFlags.verbose, "verbose", "v", false, "Print every step, not just actions")
}

func runReplay(cmd *cobra.Command, args []string) error {
	tr, err := replay.LoadTranscript(args[0])
	if err != nil {
		return err
	}

	var log *zap.Logger
	if replayFlags.verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer log.Sync() //nolint:errcheck
	}

	results, summary := replay.Replay(tr.Messages, log)

	out := cmd.OutOrStdout()
	if tr.Description != "" {
		fmt.Fprintf(out, "Transcript: %s\n", tr.Description)
	}
	for _, step := range results {
		action := step.Encode()
		if action == "none" && !replayFlags.verbose {
			continue
		}
		note := ""
		if n := tr.Messages[step.Index].Note; n != "" {
			note = "  # " + n
		}
		fmt.Fprintf(out, "  [%02d] %s%s\n", step.Index, action, note)
	}

	fmt.Fprintf(out, "Messages:    %d\n", summary.TotalMessages)
	fmt.Fprintf(out, "Deferred:    %d\n", summary.Deferred)
	fmt.Fprintf(out, "Predictions: %d\n", summary.Predictions)
	fmt.Fprintf(out, "Correct:     %d\n", summary.Correct)
	fmt.Fprintf(out, "Failed:      %d\n", summary.Failed)
	fmt.Fprintf(out, "Pending:     %d\n", summary.StillPending)

	if len(tr.Expected) == 0 {
		return nil
	}
	mismatches := replay.Verify(tr, results)
	if len(mismatches) == 0 {
		fmt.Fprintf(out, "Verification: all %d steps match\n", len(tr.Expected))
		return nil
	}
	for _, m := range mismatches {
		fmt.Fprintf(out, "  step %02d: want %s, got %s\n", m.Index, m.Want, m.Got)
	}
	return fmt.Errorf("%d of %d steps diverged from the transcript", len(mismatches), len(tr.Expected))
}
