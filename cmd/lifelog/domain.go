// ABOUTME: CLI commands for managing life domains.
// ABOUTME: Supports add, list, and rm subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifelog/internal/models"
	"github.com/spf13/cobra"
)

var domainColor string

var domainCmd = &cobra.Command{
	Use:     "domain",
	Aliases: []string{"d"},
	Short:   "Manage life domains",
	Long: `Domains are the top-level areas you track: Business, Sport, Learning.

Every metric and free performance belongs to exactly one domain, and
scores are computed per domain (or per category within one).

COMMANDS:

  add     Create a new domain
  list    List all domains
  rm      Delete a domain and everything under it

Deleting a domain removes its categories, metrics, and free performances.
Logged events survive; they simply stop contributing to any score.`,
}

var domainAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new domain",
	Long: `Add a new domain.

Examples:
  lifelog domain add Sport
  lifelog domain add Business --color cyan`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := models.NewDomain(args[0])
		if domainColor != "" {
			d.WithColor(domainColor)
		}

		if err := repo.CreateDomain(d); err != nil {
			return fmt.Errorf("failed to create domain: %w", err)
		}

		color.Green("✓ Added domain %s", d.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(d.ID.String()[:8]))

		return nil
	},
}

var domainListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		domains, err := repo.ListDomains()
		if err != nil {
			return fmt.Errorf("failed to list domains: %w", err)
		}

		if len(domains) == 0 {
			fmt.Println("No domains found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, d := range domains {
			categories, _ := repo.ListCategories(d.ID)
			metrics, _ := repo.ListMetrics(d.ID, nil, false)
			fmt.Printf("%s %s %s\n",
				faint.Sprint(d.ID.String()[:8]),
				padRight(d.Name, 16),
				faint.Sprintf("%d categories, %d metrics", len(categories), len(metrics)))
		}

		return nil
	},
}

var domainRmCmd = &cobra.Command{
	Use:   "rm <name-or-id>",
	Short: "Delete a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteDomain(args[0]); err != nil {
			return fmt.Errorf("failed to delete domain: %w", err)
		}

		color.Green("✓ Deleted domain %s", args[0])
		return nil
	},
}

func init() {
	domainAddCmd.Flags().StringVar(&domainColor, "color", "", "display color for the domain")

	domainCmd.AddCommand(domainAddCmd)
	domainCmd.AddCommand(domainListCmd)
	domainCmd.AddCommand(domainRmCmd)
	rootCmd.AddCommand(domainCmd)
}
