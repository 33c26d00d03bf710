package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/wlsync/internal/config"
	"github.com/vmunix/wlsync/internal/radarr"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List Radarr quality profiles",
	Long: `List the quality profiles defined in Radarr.

The configured target profile is marked; use this to pick a valid
sync.target_profile value before first run.`,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// Only the Radarr half is needed here; don't demand Plex credentials.
	if cfg.Radarr.URL == "" || cfg.Radarr.APIKey == "" {
		return errors.New("radarr.url and radarr.api_key are required (or RADARR_URL / RADARR_API_KEY)")
	}

	client := radarr.NewClient(cfg.Radarr.URL, cfg.Radarr.APIKey, nil)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	profiles, err := client.QualityProfiles(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		target := ""
		if p.Name == cfg.Sync.TargetProfile {
			target = "*"
		}
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Name, target})
	}

	fmt.Println(renderTable(
		[]string{"ID", "NAME", "TARGET"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	))
	return nil
}
