// ABOUTME: CLI commands for free performances.
// ABOUTME: Supports add, log, list, and rm subcommands.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifelog/internal/models"
	"github.com/spf13/cobra"
)

var (
	perfCategory string
	perfNote     string
	perfOn       string
	perfDays     int
)

var perfCmd = &cobra.Command{
	Use:     "perf",
	Aliases: []string{"p"},
	Short:   "Manage free performances",
	Long: `Free performances are one-off efforts logged with an explicit impact.

Unlike metrics, they carry no levels and no per-day limit: the same
performance can be logged several times on one day and each record
counts. Negative impacts are allowed for setbacks.

WORKFLOW:

  1. Define one:   lifelog perf add Sport "Race Day"
  2. Log it:       lifelog perf log "Race Day" 40 --note "PB"
  3. Review:       lifelog perf list Sport

COMMANDS:

  add    Define a free performance in a domain
  log    Record it with an explicit impact
  list   List recent records in a domain
  rm     Delete a single record by ID`,
}

var perfAddCmd = &cobra.Command{
	Use:   "add <domain> <name>",
	Short: "Define a free performance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.GetDomain(args[0])
		if err != nil {
			return fmt.Errorf("domain not found: %s", args[0])
		}

		fp := models.NewFreePerformance(d.ID, args[1])
		if perfCategory != "" {
			c, err := repo.GetCategory(d.ID, perfCategory)
			if err != nil {
				return fmt.Errorf("category not found: %s", perfCategory)
			}
			fp.WithCategory(c.ID)
		}

		if err := repo.CreateFreePerformance(fp); err != nil {
			return fmt.Errorf("failed to create free performance: %w", err)
		}

		color.Green("✓ Added performance %s to %s", fp.Name, d.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(fp.ID.String()[:8]))

		return nil
	},
}

var perfLogCmd = &cobra.Command{
	Use:   "log <performance> <impact>",
	Short: "Record a free performance",
	Long: `Record a free performance with an explicit impact value.

Examples:
  lifelog perf log "Race Day" 40
  lifelog perf log "Race Day" 40 --note "New PB" --on 2026-08-30
  lifelog perf log "Skipped Session" -10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fp, err := repo.GetFreePerformance(args[0])
		if err != nil {
			return fmt.Errorf("performance not found: %s", args[0])
		}

		impact, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid impact: %s", args[1])
		}

		date, err := parseDay(perfOn)
		if err != nil {
			return err
		}

		r := models.NewFreePerformanceRecord(fp, date, impact)
		if perfNote != "" {
			r.WithNote(perfNote)
		}

		if err := repo.CreateRecord(r); err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}

		color.Green("✓ Logged %s for %s", fp.Name, date)
		fmt.Printf("  %s %+.1f\n",
			color.New(color.Faint).Sprint(r.ID.String()[:8]), impact)

		return nil
	},
}

var perfListCmd = &cobra.Command{
	Use:     "list <domain>",
	Aliases: []string{"ls"},
	Short:   "List recent performance records",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.GetDomain(args[0])
		if err != nil {
			return fmt.Errorf("domain not found: %s", args[0])
		}

		now := time.Now()
		start := models.Day(now.AddDate(0, 0, -(perfDays - 1)))
		end := models.Day(now)

		records, err := repo.ListRecords(d.ID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No records found.")
			return nil
		}

		perfs, err := repo.ListFreePerformances(d.ID)
		if err != nil {
			return fmt.Errorf("failed to list performances: %w", err)
		}
		names := make(map[string]string, len(perfs))
		for _, p := range perfs {
			names[p.ID.String()] = p.Name
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			name := names[r.FreePerformanceID.String()]
			if name == "" {
				name = faint.Sprint("(deleted)")
			}
			note := ""
			if r.Note != nil && *r.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(*r.Note, 30))
			}
			fmt.Printf("%s %s %s %+.1f%s\n",
				faint.Sprint(r.ID.String()[:8]),
				faint.Sprint(r.RecordedDate),
				padRight(name, 20),
				r.Impact,
				note)
		}

		return nil
	},
}

var perfRmCmd = &cobra.Command{
	Use:   "rm <record-id>",
	Short: "Delete a performance record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteRecord(args[0]); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		color.Green("✓ Deleted record %s", args[0])
		return nil
	},
}

func init() {
	perfAddCmd.Flags().StringVarP(&perfCategory, "category", "c", "", "category to place the performance in")

	perfLogCmd.Flags().StringVar(&perfNote, "note", "", "note for the record")
	perfLogCmd.Flags().StringVar(&perfOn, "on", "", "day to log (YYYY-MM-DD, default today)")

	perfListCmd.Flags().IntVarP(&perfDays, "days", "d", 30, "day window to list")

	perfCmd.AddCommand(perfAddCmd)
	perfCmd.AddCommand(perfLogCmd)
	perfCmd.AddCommand(perfListCmd)
	perfCmd.AddCommand(perfRmCmd)
	rootCmd.AddCommand(perfCmd)
}
