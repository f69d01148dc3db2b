package main

import (
	"errors"
	"fmt"

	"deal-analytics/internal/app"
	"deal-analytics/internal/clocks"
	"deal-analytics/internal/statistics"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every raw event and daily aggregate",
		Long: `Delete every raw event and daily aggregate. This cannot be undone.

Examples:
  deal-analytics reset --yes
  deal-analytics reset --config ./configs/configs.yml --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("reset deletes all data; pass --yes to confirm")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			appLogger, err := app.NewLogger(cfg)
			if err != nil {
				return err
			}
			clock, err := clocks.NewBusinessClock(cfg.BusinessClock.Timezone, cfg.BusinessClock.Cutoff)
			if err != nil {
				return err
			}

			eventStore, err := app.OpenEventStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer eventStore.Close()

			statisticsService := statistics.NewStatisticsService(eventStore, clock)
			if err := statisticsService.Reset(appLogger.WithContext(cmd.Context())); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}

			fmt.Println("All raw events and daily aggregates deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the irreversible reset")

	return cmd
}
