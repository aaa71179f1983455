// Command presence-report prints weekday presence statistics for a CSV file.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/presence-analyzer/presence-analyzer/internal/config"
	"github.com/presence-analyzer/presence-analyzer/internal/report"
	"github.com/presence-analyzer/presence-analyzer/pkg/presence"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	csvPath    string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "presence-report",
		Short:        "Weekday presence statistics from a presence CSV",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetLevel(log.WarnLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config/application.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "presence CSV file (overrides configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped lines")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "List users present in the data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadStore(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Users(store.Users()))
			return nil
		},
	})
	rootCmd.AddCommand(newUserCmd("mean", "Mean presence time per weekday", func(store *presence.Store, userId int) (string, error) {
		values, err := presence.MeanByWeekday(store, userId)
		if err != nil {
			return "", err
		}
		return report.Means(values), nil
	}))
	rootCmd.AddCommand(newUserCmd("total", "Total presence time per weekday", func(store *presence.Store, userId int) (string, error) {
		totals, err := presence.TotalByWeekday(store, userId)
		if err != nil {
			return "", err
		}
		return report.Totals(totals), nil
	}))
	rootCmd.AddCommand(newUserCmd("start-end", "Mean arrival and departure time per weekday", func(store *presence.Store, userId int) (string, error) {
		startEnd, err := presence.MeanStartEndByWeekday(store, userId)
		if err != nil {
			return "", err
		}
		return report.StartEnd(startEnd), nil
	}))

	return rootCmd
}

func newUserCmd(use, short string, render func(*presence.Store, int) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <userId>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userId, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}
			store, err := loadStore(cmd.Context())
			if err != nil {
				return err
			}
			out, err := render(store, userId)
			if err != nil {
				return fmt.Errorf("user %d: %w", userId, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func loadStore(ctx context.Context) (*presence.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if csvPath != "" {
		cfg.Data.Source = config.FileSource
		cfg.Data.Csv = csvPath
	}
	source, err := presence.NewSource(cfg.Data)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return presence.Load(ctx, source)
}
