package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/romangod6/sitemapgen/internal/storage"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded sitemap runs",
	Long:  "Lists previous runs from the history store, or prints the entries of a single run when its ID is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

var (
	historyLimit  int
	historyOffset int
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "Number of runs to skip")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.HistoryEnabled() {
		return storage.ErrNoHistory
	}

	store, err := storage.Open(cfg.History.Driver, cfg.History.DSN)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	if len(args) == 1 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", args[0], err)
		}
		run, err := store.GetRun(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("run %s not found", id)
		}

		fmt.Fprintln(w, "LOC\tLASTMOD\tCHANGEFREQ\tPRIORITY")
		for _, e := range run.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Loc, e.LastMod, e.ChangeFreq, e.Priority)
		}
		return nil
	}

	runs, err := store.ListRuns(ctx, historyLimit, historyOffset)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	fmt.Fprintln(w, "ID\tGENERATED\tBASE URL\tINCLUDED\tSKIPPED\tOUTPUT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID, r.GeneratedAt.Local().Format(time.DateTime), r.BaseURL, r.Included(), len(r.Skipped), r.OutputPath)
	}
	return nil
}
