// ABOUTME: Root Cobra command for lifelog CLI.
// ABOUTME: Handles config loading and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/lifelog/internal/charm"
	"github.com/harperreed/lifelog/internal/config"
	"github.com/harperreed/lifelog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository

	// charmClient is set when the charm backend is active. Sync
	// commands need the client directly.
	charmClient *charm.Client
)

var rootCmd = &cobra.Command{
	Use:   "lifelog",
	Short: "Personal life-tracking dashboard",
	Long: `Lifelog tracks daily effort across life domains and turns it into scores.

HOW IT WORKS:

  You define domains (Business, Sport, Learning) with optional categories,
  then define metrics inside them. Checking off a metric for a day records
  an impact; daily impacts sum into a score, and consecutive filled days
  build a streak that adds a bonus on top.

  Levels map to default impacts: simple 20, advanced 50, exceptional 80.
  Free performances let you log one-off efforts with an explicit impact.

QUICK START:

  $ lifelog domain add Sport                 # Create a domain
  $ lifelog metric add Sport Training        # Define a metric
  $ lifelog done Training                    # Check it off for today
  $ lifelog done Training --level advanced   # Higher effort, higher impact
  $ lifelog stats Sport                      # Score over the last 30 days
  $ lifelog streak Sport                     # Current and best streak

FREE PERFORMANCES AND JOURNAL:

  $ lifelog perf add Sport "Race Day"        # Define a free performance
  $ lifelog perf log "Race Day" 40           # Log it with explicit impact
  $ lifelog journal add "Strong week."       # Dated journal entry

SYNC (CHARM BACKEND):

  With "backend": "charm" in the config, data lives in Charm KV and is
  E2E encrypted with your SSH key.

  $ lifelog sync link      # Link device to your Charm account
  $ lifelog sync status    # Check sync status

MCP INTEGRATION:

  Run 'lifelog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lifelog": { "command": "lifelog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  SQLite (default) stores data at ~/.local/share/lifelog/lifelog.db.
  Config lives at ~/.config/lifelog/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		if c, ok := repo.(*charm.Client); ok {
			charmClient = c
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
