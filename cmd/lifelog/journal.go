// ABOUTME: CLI commands for journal entries and insights.
// ABOUTME: Supports add, list, and highlight subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifelog/internal/models"
	"github.com/spf13/cobra"
)

var (
	journalOn    string
	journalLimit int
	insightNote  string
)

var journalCmd = &cobra.Command{
	Use:     "journal",
	Aliases: []string{"j"},
	Short:   "Keep a dated journal",
	Long: `Keep dated journal entries alongside your scores.

Insights let you pull a highlight out of an entry and attach a note,
so the lesson survives even when you stop rereading old entries.

COMMANDS:

  add         Write an entry for a day
  list        List recent entries with their insights
  highlight   Extract an insight from an entry

EXAMPLES:

  lifelog journal add "Strong week, legs felt fresh."
  lifelog journal add "Slow start." --on 2026-08-30
  lifelog journal list -n 5
  lifelog journal highlight a1b2c3d4 "legs felt fresh" --note "Taper works"`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add <body>",
	Short: "Write a journal entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := strings.Join(args, " ")

		date, err := parseDay(journalOn)
		if err != nil {
			return err
		}

		e := models.NewJournalEntry(date, body)
		if err := repo.CreateJournalEntry(e); err != nil {
			return fmt.Errorf("failed to create journal entry: %w", err)
		}

		color.Green("✓ Journal entry for %s", date)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(e.ID.String()[:8]))

		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := repo.ListJournalEntries(journalLimit)
		if err != nil {
			return fmt.Errorf("failed to list journal entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No journal entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(e.ID.String()[:8]),
				faint.Sprint(e.EntryDate),
				truncate(e.Body, 60))

			insights, err := repo.ListInsights(&e.ID)
			if err != nil {
				continue
			}
			for _, i := range insights {
				note := ""
				if i.Note != nil && *i.Note != "" {
					note = faint.Sprintf(" — %s", *i.Note)
				}
				fmt.Printf("    %s %s%s\n", color.YellowString("★"), i.Highlight, note)
			}
		}

		return nil
	},
}

var journalHighlightCmd = &cobra.Command{
	Use:   "highlight <entry-id> <text>",
	Short: "Extract an insight from an entry",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := repo.GetJournalEntry(args[0])
		if err != nil {
			return fmt.Errorf("journal entry not found: %s", args[0])
		}

		highlight := strings.Join(args[1:], " ")
		i := models.NewInsight(e.ID, highlight)
		if insightNote != "" {
			i.WithNote(insightNote)
		}

		if err := repo.CreateInsight(i); err != nil {
			return fmt.Errorf("failed to create insight: %w", err)
		}

		color.Green("✓ Insight saved")
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(i.ID.String()[:8]), highlight)

		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringVar(&journalOn, "on", "", "entry day (YYYY-MM-DD, default today)")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 10, "max number of entries")
	journalHighlightCmd.Flags().StringVar(&insightNote, "note", "", "note to attach to the insight")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalHighlightCmd)
	rootCmd.AddCommand(journalCmd)
}
