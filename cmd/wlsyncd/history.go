package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/wlsync/internal/config"
	"github.com/vmunix/wlsync/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent reconciliation passes",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of passes to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded passes")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		status := "ok"
		if r.Error != "" {
			status = r.Error
		}
		rows = append(rows, []string{
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.FinishedAt.Sub(r.StartedAt).Round(100 * time.Millisecond).String(),
			strconv.Itoa(r.Updated),
			strconv.Itoa(r.Unmatched),
			strconv.Itoa(r.AlreadyCorrect),
			status,
		})
	}

	fmt.Println(renderTable(
		[]string{"STARTED", "TOOK", "UPDATED", "UNMATCHED", "CORRECT", "STATUS"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
	))
	return nil
}
