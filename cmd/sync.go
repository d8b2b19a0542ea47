package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"fioparser/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync commands
	dryRunSync   bool
	yesConfirm   bool
	sinceMinutes int
	verboseSync  bool
)

// syncCmd is the parent command for one-shot contact reconciliation.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile contact name fields once and exit",
	Long: `Resolve contact names and write the surname and given name fields back to amoCRM.

Examples:
  # Contacts created in the last 5 minutes
  sync recent

  # Contacts created in the last day, without writing anything
  sync recent --since 1440 --dry-run

  # Every contact (with interactive confirmation)
  sync all

  # Every contact, non-interactive
  sync all --yes`,
}

var syncRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Reconcile recently created contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context(), false)
	},
}

var syncAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Reconcile every contact in the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context(), true)
	},
}

func init() {
	syncCmd.PersistentFlags().BoolVar(&dryRunSync, "dry-run", false, "Resolve and report without updating contacts")
	syncCmd.PersistentFlags().BoolVarP(&verboseSync, "verbose", "v", false, "Print every contact result, not only updates and failures")
	syncRecentCmd.Flags().IntVar(&sinceMinutes, "since", 0, "Look back this many minutes (default: sync.lookback_minutes)")
	syncAllCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the full run (non-interactive)")

	syncCmd.AddCommand(syncRecentCmd, syncAllCmd)
	RootCmd.AddCommand(syncCmd)
}

func runSync(ctx context.Context, all bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	l := rt.logger
	defer l.Sync()

	client, err := rt.directoryClient()
	if err != nil {
		return fmt.Errorf("failed to create directory client: %w", err)
	}
	if !client.Authorized(ctx) {
		return fmt.Errorf("directory access token is not configured")
	}

	if dryRunSync {
		rt.cfg.Sync.DryRun = true
	}
	engine := rt.engine(client, reconcile.WithObserver(printResult))

	var list []reconcile.Contact
	if all {
		if !rt.cfg.Sync.DryRun && !confirmFullRun() {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		l.Info("Listing every contact", zap.String("domain", rt.cfg.Directory.Domain))
		list, err = client.ListAllContacts(ctx)
	} else {
		lookback := rt.cfg.Sync.Lookback()
		if sinceMinutes > 0 {
			lookback = time.Duration(sinceMinutes) * time.Minute
		}
		since := time.Now().Add(-lookback)
		l.Info("Listing recent contacts", zap.Time("since", since))
		list, err = client.ListContacts(ctx, since)
	}
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	summary := engine.ProcessBatch(ctx, list)
	printSummary(l, summary, rt.cfg.Sync.DryRun)
	return nil
}

// printResult writes one line per processed contact to stdout.
func printResult(r reconcile.Result) {
	if !verboseSync && r.Outcome == reconcile.OutcomeSkipped && r.Reason != reconcile.ReasonDryRun {
		return
	}
	line := fmt.Sprintf("%-8s %-10d %s", r.Outcome, r.ContactID, r.Reason)
	if r.Proposed != nil {
		line += fmt.Sprintf("  %q / %q", r.Proposed.LastName, r.Proposed.FirstName)
	}
	if r.Error != "" {
		line += "  " + r.Error
	}
	fmt.Println(strings.TrimRight(line, " "))
}

func printSummary(l *zap.Logger, s reconcile.BatchSummary, dryRun bool) {
	l.Info("Sync finished",
		zap.Int("total", s.Total),
		zap.Int("updated", s.Updated),
		zap.Int("skipped", s.Skipped),
		zap.Int("failed", s.Failed),
		zap.Bool("stopped", s.Stopped),
		zap.Duration("duration", s.Duration),
	)
	if dryRun {
		l.Info("Dry-run mode: No changes were made.")
	}
}

// confirmFullRun prompts the user for confirmation or uses --yes flag.
func confirmFullRun() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  This rewrites name fields of every contact. Type 'yes' to confirm: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
