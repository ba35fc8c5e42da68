// ABOUTME: CLI command for period statistics over a domain or category.
// ABOUTME: Renders the score, streak, fill rate, and a per-day bar chart.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	statsCategory string
	statsDays     int
	statsScale    int
	statsChart    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats <domain>",
	Short: "Show score statistics",
	Long: `Show score statistics for a domain (or one category) over a day window.

WHAT THE NUMBERS MEAN:

  Score        Normalized index plus streak bonus. The index is the
               average of filled days, clamped to the scale ceiling;
               the bonus can push the score past it.
  Avg          Raw average impact over filled days only. Days with no
               entries are excluded, not counted as zero.
  Filled       How many days in the window have at least one entry.
  Streak       Consecutive filled days ending today (or yesterday).

EXAMPLES:

  lifelog stats Sport                     # Last 30 days
  lifelog stats Sport --days 7            # Last week
  lifelog stats Sport --category Running  # One category only
  lifelog stats Sport --scale 10          # /10 summary scale
  lifelog stats Sport --chart             # Per-day bar chart`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.GetDomain(args[0])
		if err != nil {
			return fmt.Errorf("domain not found: %s", args[0])
		}

		scope := scoring.DomainScope(d.ID)
		scopeName := d.Name
		if statsCategory != "" {
			c, err := repo.GetCategory(d.ID, statsCategory)
			if err != nil {
				return fmt.Errorf("category not found: %s", statsCategory)
			}
			scope = scoring.CategoryScope(d.ID, c.ID)
			scopeName = fmt.Sprintf("%s/%s", d.Name, c.Name)
		}

		// Flags win over config, config wins over built-in defaults.
		if !cmd.Flags().Changed("days") {
			statsDays = cfg.GetDefaultDays()
		}
		if statsDays <= 0 {
			return fmt.Errorf("days must be positive, got %d", statsDays)
		}
		scale := cfg.GetScale()
		if cmd.Flags().Changed("scale") {
			scale = scoring.DefaultScale()
			if statsScale == 10 {
				scale = scoring.SummaryScale()
			}
		}

		now := time.Now()
		dates := scoring.DateRange(now, statsDays)
		daily, err := loadDailyScores(d.ID, scope, dates)
		if err != nil {
			return err
		}

		stats := scoring.ComputeStats(dates, daily, now, scale)

		fmt.Printf("%s, last %d days\n\n", scopeName, statsDays)
		fmt.Printf("  Score   %s\n", color.New(color.Bold).Sprintf("%.1f / %.0f", stats.DisplayedScore, scale.Ceiling))
		fmt.Printf("  Avg     %.1f raw over %d filled days\n", stats.AvgRaw, stats.FilledDays)
		fmt.Printf("  Filled  %d/%d days (%.0f%%)\n", stats.FilledDays, stats.TotalDays, stats.FilledRate*100)
		fmt.Printf("  Streak  %d (best %d, bonus %+.0f)\n", stats.Streak, stats.MaxStreak, stats.StreakBonus)

		if statsChart {
			fmt.Println()
			renderChart(dates, daily, scale)
		}

		return nil
	},
}

// loadDailyScores fetches the window's data and folds it into day scores.
func loadDailyScores(domainID uuid.UUID, scope scoring.Scope, dates []string) (map[string]float64, error) {
	start := dates[len(dates)-1]
	end := dates[0]

	events, err := repo.ListMetricEvents(domainID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	perfs, err := repo.ListRecords(domainID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defs, err := repo.ListMetrics(domainID, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	known := make(map[uuid.UUID]bool, len(defs))
	for _, m := range defs {
		known[m.ID] = true
	}
	orphans := 0
	for _, ev := range events {
		if !known[ev.MetricID] && ev.CustomImpact == nil {
			orphans++
		}
	}
	if orphans > 0 {
		color.Yellow("⚠ %d event(s) reference deleted metrics; counted as zero impact", orphans)
	}

	return scoring.DailyScores(scope, dates, events, perfs, defs), nil
}

// renderChart prints one bar per day, oldest first. Unfilled days get a
// dot so gaps stand out from filled zero-score days.
func renderChart(dates []string, daily map[string]float64, cfg scoring.ScaleConfig) {
	const barWidth = 40

	faint := color.New(color.Faint)
	for i := len(dates) - 1; i >= 0; i-- {
		day := dates[i]
		score, filled := daily[day]
		if !filled {
			fmt.Printf("  %s %s\n", faint.Sprint(day), faint.Sprint("·"))
			continue
		}

		norm := score * cfg.Multiplier
		if norm < 0 {
			norm = 0
		}
		if norm > cfg.Ceiling {
			norm = cfg.Ceiling
		}
		n := int(norm / cfg.Ceiling * barWidth)
		fmt.Printf("  %s %s %.0f\n",
			faint.Sprint(day),
			strings.Repeat("█", n),
			score)
	}
}

var streakCmd = &cobra.Command{
	Use:   "streak <domain>",
	Short: "Show current and best streak",
	Long: `Show the current and best streak for a domain or category.

The current streak counts consecutive filled days ending today. A day
that hasn't been logged yet doesn't break it: the chain may end
yesterday instead. Streaks of three or more days earn a score bonus of
streak length minus two.

Examples:
  lifelog streak Sport
  lifelog streak Sport --category Running`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.GetDomain(args[0])
		if err != nil {
			return fmt.Errorf("domain not found: %s", args[0])
		}

		scope := scoring.DomainScope(d.ID)
		if statsCategory != "" {
			c, err := repo.GetCategory(d.ID, statsCategory)
			if err != nil {
				return fmt.Errorf("category not found: %s", statsCategory)
			}
			scope = scoring.CategoryScope(d.ID, c.ID)
		}

		now := time.Now()
		dates := scoring.DateRange(now, 365)
		daily, err := loadDailyScores(d.ID, scope, dates)
		if err != nil {
			return err
		}

		var filled []string
		for day := range daily {
			filled = append(filled, day)
		}
		streak := scoring.ComputeStreak(filled, now)
		bonus := scoring.StreakBonus(streak.Current)

		if streak.Current >= 3 {
			color.Green("🔥 %d day streak", streak.Current)
		} else {
			fmt.Printf("%d day streak\n", streak.Current)
		}
		fmt.Printf("  Best: %d\n", streak.Max)
		fmt.Printf("  Bonus: %+d\n", bonus)

		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsCategory, "category", "c", "", "narrow to one category")
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 30, "day window ending today")
	statsCmd.Flags().IntVar(&statsScale, "scale", 100, "score ceiling (100 or 10)")
	statsCmd.Flags().BoolVar(&statsChart, "chart", false, "show per-day bar chart")

	streakCmd.Flags().StringVarP(&statsCategory, "category", "c", "", "narrow to one category")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(streakCmd)
}
