// filepath: internal/cli/recovery.go
package cli

import (
	"context"
	"flowershop/internal/logging"
	"flowershop/internal/repository"
	"flowershop/internal/services"
	"flowershop/internal/storage"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var recoveryDryRun bool

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Find and remove orphaned product images",
	Long: `Lists stored images that no catalog record references, e.g. left behind when a record
write failed after its image was uploaded. Images younger than storage.orphan_min_age are
skipped. Nothing is deleted unless --dryrun=false is given. This does not start the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecovery(cmd.Context(), recoveryDryRun)
	},
}

func init() {
	RootCmd.AddCommand(recoveryCmd)
	recoveryCmd.Flags().BoolVar(&recoveryDryRun, "dryrun", true, "If true, report only without deleting.")
}

func runRecovery(ctx context.Context, dryRun bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Initialize repository (using cfg loaded by RootCmd)
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.ValidateSchema(); err != nil {
		return fmt.Errorf("cannot run recovery on outdated database: %w", err)
	}

	store, err := storage.NewFileStore(cfg.Storage.Root, imageBaseURL())
	if err != nil {
		return fmt.Errorf("failed to open image storage: %w", err)
	}

	logging.Log.Infof("Starting orphan image recovery (dry run: %t)...", dryRun)

	hk := services.NewHousekeepingService(repo, store, 0, cfg.OrphanMinAge)
	report, err := hk.TriggerSweep(ctx, dryRun)
	if err != nil {
		return err
	}

	if len(report.Orphaned) > 0 {
		logging.Log.Infof("Orphaned images: %s", strings.Join(report.Orphaned, ", "))
	}
	logging.Log.Infof("Recovery complete. Scanned: %d, orphaned: %d, removed: %d", report.Scanned, len(report.Orphaned), report.Removed)
	return nil
}
