// ABOUTME: CLI commands for managing categories within domains.
// ABOUTME: Supports add, list, and rm subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifelog/internal/models"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories within a domain",
	Long: `Categories split a domain into finer-grained areas.

A metric can optionally belong to a category; stats and streaks can
then be narrowed to that category instead of the whole domain.

Examples:
  lifelog category add Sport Running
  lifelog category list Sport
  lifelog category rm a1b2c3d4`,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <domain> <name>",
	Short: "Add a category to a domain",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.GetDomain(args[0])
		if err != nil {
			return fmt.Errorf("domain not found: %s", args[0])
		}

		c := models.NewCategory(d.ID, args[1])
		if err := repo.CreateCategory(c); err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}

		color.Green("✓ Added category %s to %s", c.Name, d.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(c.ID.String()[:8]))

		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:     "list <domain>",
	Aliases: []string{"ls"},
	Short:   "List categories in a domain",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := repo.GetDomain(args[0])
		if err != nil {
			return fmt.Errorf("domain not found: %s", args[0])
		}

		categories, err := repo.ListCategories(d.ID)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}

		if len(categories) == 0 {
			fmt.Println("No categories found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range categories {
			fmt.Printf("%s %s\n", faint.Sprint(c.ID.String()[:8]), c.Name)
		}

		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a category",
	Long: `Delete a category by ID or ID prefix.

Metrics in the category are kept; they fall back to domain scope.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteCategory(args[0]); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}

		color.Green("✓ Deleted category %s", args[0])
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	rootCmd.AddCommand(categoryCmd)
}
