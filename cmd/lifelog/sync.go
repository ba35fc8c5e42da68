// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, repair, reset, and wipe operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/harperreed/lifelog/internal/storage"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync lifelog data across devices",
	Long: `Sync lifelog data across devices using Charm Cloud.

Requires "backend": "charm" in ~/.config/lifelog/config.json. Your data
is E2E encrypted with your SSH key before upload; the server never sees
your unencrypted entries.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     lifelog sync link

  2. On other devices, link with the same Charm account:
     lifelog sync link

  3. Check sync status:
     lifelog sync status

COMMANDS:

  link      Link this device to your Charm account
  unlink    Disconnect this device from Charm
  status    Show sync status and account info
  repair    Repair database corruption (checkpoints WAL, removes SHM, vacuums)
  reset     Reset local data and restore from cloud (destructive)
  wipe      Delete cloud and local data (destructive)

Data syncs automatically after each write operation.`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.

Example:
  lifelog sync link`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Use charm CLI to link
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Your lifelog data will now sync automatically across devices.")

		// Sync immediately after linking
		if charmClient != nil {
			if err := charmClient.Sync(); err != nil {
				color.Yellow("⚠ Initial sync failed: %v", err)
			} else {
				color.Green("✓ Initial sync complete")
			}
		}

		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local lifelog data.
You can link again later with 'lifelog sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Use charm CLI to unlink
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local lifelog data is preserved.")

		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show current sync status including:
- Charm account info
- Connection status
- Local data info`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if charmClient == nil {
			color.Yellow("Charm backend not active")
			fmt.Println("\nSet \"backend\": \"charm\" in ~/.config/lifelog/config.json to enable sync.")
			return nil
		}

		id, err := charmClient.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'lifelog sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		fmt.Println("Server: charm.2389.dev")
		fmt.Println()

		// Show local data counts
		domains, _ := charmClient.ListDomains()
		var metrics, events int
		for _, d := range domains {
			ms, _ := charmClient.ListMetrics(d.ID, nil, true)
			metrics += len(ms)
			evs, _ := charmClient.ListMetricEvents(d.ID, "0000-01-01", "9999-12-31")
			events += len(evs)
		}

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Domains: %d\n", len(domains))
		fmt.Printf("  Metrics: %d\n", metrics)
		fmt.Printf("  Events: %d\n", events)

		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair database corruption",
	Long: `Repair database corruption by checkpointing WAL, removing SHM files, checking integrity, and vacuuming.

Works on whichever backend is active: the local SQLite database or the
Charm KV store. Use this when you encounter database lock errors or
corruption. Run with --force to attempt recovery even if integrity
checks fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if charmClient != nil {
			fmt.Println("Repairing lifelog KV store...")
			result, err := kv.Repair("lifelog", force)
			printRepairResult(result.WalCheckpointed, result.ShmRemoved, result.IntegrityOK, result.Vacuumed)
			if err != nil {
				if !force {
					color.Yellow("\nRun with --force to attempt recovery.")
				}
				return fmt.Errorf("repair failed: %w", err)
			}
			color.Green("\n✓ Repair complete")
			return nil
		}

		db, ok := repo.(*storage.DB)
		if !ok {
			return fmt.Errorf("no repairable backend active")
		}

		fmt.Println("Repairing lifelog database...")
		result, err := db.Repair(force)
		printRepairResult(result.WalCheckpointed, result.ShmRemoved, result.IntegrityOK, result.Vacuumed)
		if err != nil {
			if !force {
				color.Yellow("\nRun with --force to attempt recovery.")
			}
			return fmt.Errorf("repair failed: %w", err)
		}

		color.Green("\n✓ Repair complete")
		return nil
	},
}

func printRepairResult(walCheckpointed, shmRemoved, integrityOK, vacuumed bool) {
	if walCheckpointed {
		color.Green("  ✓ WAL checkpointed")
	}
	if shmRemoved {
		color.Green("  ✓ SHM file removed")
	}
	if integrityOK {
		color.Green("  ✓ Integrity check passed")
	} else {
		color.Red("  ✗ Integrity check failed")
	}
	if vacuumed {
		color.Green("  ✓ Database vacuumed")
	}
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. All local data will be lost and restored from cloud.
Use this to:
- Fix sync conflicts
- Reset a device to cloud state
- Start fresh on a device`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Confirm
		fmt.Println("This will DELETE all local lifelog data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := kv.Reset("lifelog"); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ Local data reset and restored from cloud")

		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all cloud and local data",
	Long: `Delete all cloud backups and local data.

This is a DESTRUCTIVE operation. ALL data will be permanently deleted.
Use this to:
- Completely remove all lifelog data
- Start completely fresh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Confirm
		fmt.Println("This will PERMANENTLY DELETE all cloud backups and local lifelog data.")
		fmt.Print("Type 'wipe' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "wipe" {
			fmt.Println("Canceled.")
			return nil
		}

		result, err := kv.Wipe("lifelog")
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Data wiped successfully")
		fmt.Printf("  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Printf("  Local files deleted: %d\n", result.LocalFilesDeleted)

		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncRepairCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	syncRepairCmd.Flags().Bool("force", false, "Attempt recovery even if integrity checks fail")

	rootCmd.AddCommand(syncCmd)
}
