// ABOUTME: CLI commands for managing metric definitions.
// ABOUTME: Supports add, list, pause, resume, and rm subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/lifelog/internal/models"
	"github.com/spf13/cobra"
)

var (
	metricCategory    string
	metricSimple      float64
	metricAdvanced    float64
	metricExceptional float64
	metricListAll     bool
	metricListCat     string
)

var metricCmd = &cobra.Command{
	Use:     "metric",
	Aliases: []string{"m"},
	Short:   "Manage metric definitions",
	Long: `Metrics are the repeatable actions you check off day by day.

Each metric carries three impact values, one per performance level:

  simple       default 20    showed up, did the baseline
  advanced     default 50    solid focused effort
  exceptional  default 80    went well beyond

Checking a metric off records at most one event per day; checking it
again for the same day replaces the earlier level.

COMMANDS:

  add      Define a new metric in a domain
  list     List metrics in a domain
  pause    Deactivate a metric (keeps its history)
  resume   Reactivate a paused metric
  rm       Delete a metric definition

Deleting a metric keeps its logged events, but without a definition
they no longer contribute to scores.`,
}

var metricAddCmd = &cobra.Command{
	Use:   "add <domain> <name>",
	Short: "Define a new metric",
	Long: `Define a new metric in a domain.

Examples:
  lifelog metric add Sport Training
  lifelog metric add Sport Intervals --category Running
  lifelog metric add Learning Reading --simple 10 --advanced 30 --exceptional 60`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.GetDomain(args[0])
		if err != nil {
			return fmt.Errorf("domain not found: %s", args[0])
		}

		m := models.NewMetric(d.ID, args[1])

		if metricCategory != "" {
			c, err := repo.GetCategory(d.ID, metricCategory)
			if err != nil {
				return fmt.Errorf("category not found: %s", metricCategory)
			}
			m.WithCategory(c.ID)
		}

		if cmd.Flags().Changed("simple") || cmd.Flags().Changed("advanced") || cmd.Flags().Changed("exceptional") {
			m.WithImpacts(metricSimple, metricAdvanced, metricExceptional)
		}

		if err := repo.CreateMetric(m); err != nil {
			return fmt.Errorf("failed to create metric: %w", err)
		}

		color.Green("✓ Added metric %s to %s", m.Name, d.Name)
		fmt.Printf("  %s %.0f/%.0f/%.0f\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.ImpactSimple, m.ImpactAdvanced, m.ImpactExceptional)

		return nil
	},
}

var metricListCmd = &cobra.Command{
	Use:     "list <domain>",
	Aliases: []string{"ls"},
	Short:   "List metrics in a domain",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.GetDomain(args[0])
		if err != nil {
			return fmt.Errorf("domain not found: %s", args[0])
		}

		var categoryID *uuid.UUID
		if metricListCat != "" {
			c, err := repo.GetCategory(d.ID, metricListCat)
			if err != nil {
				return fmt.Errorf("category not found: %s", metricListCat)
			}
			categoryID = &c.ID
		}

		metrics, err := repo.ListMetrics(d.ID, categoryID, metricListAll)
		if err != nil {
			return fmt.Errorf("failed to list metrics: %w", err)
		}

		if len(metrics) == 0 {
			fmt.Println("No metrics found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range metrics {
			status := ""
			if !m.Active {
				status = faint.Sprint(" (paused)")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(m.ID.String()[:8]),
				padRight(m.Name, 20),
				faint.Sprintf("%.0f/%.0f/%.0f", m.ImpactSimple, m.ImpactAdvanced, m.ImpactExceptional),
				status)
		}

		return nil
	},
}

var metricPauseCmd = &cobra.Command{
	Use:   "pause <name-or-id>",
	Short: "Deactivate a metric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.SetMetricActive(args[0], false); err != nil {
			return fmt.Errorf("failed to pause metric: %w", err)
		}

		color.Green("✓ Paused %s", args[0])
		return nil
	},
}

var metricResumeCmd = &cobra.Command{
	Use:   "resume <name-or-id>",
	Short: "Reactivate a paused metric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.SetMetricActive(args[0], true); err != nil {
			return fmt.Errorf("failed to resume metric: %w", err)
		}

		color.Green("✓ Resumed %s", args[0])
		return nil
	},
}

var metricRmCmd = &cobra.Command{
	Use:   "rm <name-or-id>",
	Short: "Delete a metric definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteMetric(args[0]); err != nil {
			return fmt.Errorf("failed to delete metric: %w", err)
		}

		color.Green("✓ Deleted metric %s", args[0])
		return nil
	},
}

func init() {
	metricAddCmd.Flags().StringVarP(&metricCategory, "category", "c", "", "category to place the metric in")
	metricAddCmd.Flags().Float64Var(&metricSimple, "simple", models.DefaultImpactSimple, "impact for the simple level")
	metricAddCmd.Flags().Float64Var(&metricAdvanced, "advanced", models.DefaultImpactAdvanced, "impact for the advanced level")
	metricAddCmd.Flags().Float64Var(&metricExceptional, "exceptional", models.DefaultImpactExceptional, "impact for the exceptional level")

	metricListCmd.Flags().BoolVarP(&metricListAll, "all", "a", false, "include paused metrics")
	metricListCmd.Flags().StringVarP(&metricListCat, "category", "c", "", "filter by category")

	metricCmd.AddCommand(metricAddCmd)
	metricCmd.AddCommand(metricListCmd)
	metricCmd.AddCommand(metricPauseCmd)
	metricCmd.AddCommand(metricResumeCmd)
	metricCmd.AddCommand(metricRmCmd)
	rootCmd.AddCommand(metricCmd)
}
