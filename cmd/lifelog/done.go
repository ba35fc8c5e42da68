// ABOUTME: CLI commands for checking metrics off and undoing them.
// ABOUTME: The done/undo pair is the daily logging workflow.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifelog/internal/models"
	"github.com/harperreed/lifelog/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	doneLevel  string
	doneImpact float64
	doneOn     string
	undoOn     string
)

var doneCmd = &cobra.Command{
	Use:   "done <metric>",
	Short: "Check a metric off for a day",
	Long: `Check a metric off for today (or another day with --on).

At most one event exists per metric per day. Checking off a metric
that's already done for that day replaces the earlier level, it does
not stack.

LEVELS:

  --level simple       baseline effort (default)
  --level advanced     solid focused effort
  --level exceptional  went well beyond

A custom --impact replaces the level-derived impact entirely, even
when it is zero or negative.

EXAMPLES:

  lifelog done Training                       # Simple, today
  lifelog done Training --level advanced      # Higher impact
  lifelog done Training --on 2026-08-30       # Backfill a day
  lifelog done Training --impact 7            # Explicit impact`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := repo.GetMetric(args[0])
		if err != nil {
			return fmt.Errorf("metric not found: %s", args[0])
		}

		level := models.LevelSimple
		if doneLevel != "" {
			if !models.IsValidPerformanceLevel(doneLevel) {
				return fmt.Errorf("unknown performance level: %s\nValid levels: simple, advanced, exceptional", doneLevel)
			}
			level = models.PerformanceLevel(doneLevel)
		}

		date, err := parseDay(doneOn)
		if err != nil {
			return err
		}

		ev := models.NewMetricEvent(m, date, level)
		if cmd.Flags().Changed("impact") {
			ev.WithCustomImpact(doneImpact)
		}

		if err := repo.RecordMetricEvent(ev); err != nil {
			return fmt.Errorf("failed to record event: %w", err)
		}

		impact := scoring.ResolveImpact(ev, m)
		color.Green("✓ %s done for %s", m.Name, date)
		fmt.Printf("  %s %s %+.0f\n",
			color.New(color.Faint).Sprint(ev.ID.String()[:8]),
			level, impact)

		return nil
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo <metric>",
	Short: "Remove a metric check-off",
	Long: `Remove the event for a metric on a day, as if it was never done.

Examples:
  lifelog undo Training                  # Undo today's check-off
  lifelog undo Training --on 2026-08-30  # Undo a specific day`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := repo.GetMetric(args[0])
		if err != nil {
			return fmt.Errorf("metric not found: %s", args[0])
		}

		date, err := parseDay(undoOn)
		if err != nil {
			return err
		}

		if err := repo.DeleteMetricEventByDay(m.ID, date); err != nil {
			return fmt.Errorf("failed to undo: %w", err)
		}

		color.Green("✓ Removed %s for %s", m.Name, date)
		return nil
	},
}

// parseDay validates an optional YYYY-MM-DD argument, defaulting to today.
func parseDay(s string) (string, error) {
	if s == "" {
		return models.Day(time.Now()), nil
	}
	t, err := time.Parse(models.DayFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", s)
	}
	return t.Format(models.DayFormat), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	doneCmd.Flags().StringVarP(&doneLevel, "level", "l", "", "performance level (simple, advanced, exceptional)")
	doneCmd.Flags().Float64VarP(&doneImpact, "impact", "i", 0, "custom impact override")
	doneCmd.Flags().StringVar(&doneOn, "on", "", "day to log (YYYY-MM-DD, default today)")

	undoCmd.Flags().StringVar(&undoOn, "on", "", "day to undo (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoCmd)
}
