package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/analyze"
	"github.com/sells-group/storescout/internal/model"
)

var analyzeMigrate bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Cross-reference saved retailers against uploaded markets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}

		if analyzeMigrate {
			changed, err := env.store.MigrateRetailers()
			if err != nil {
				return err
			}
			zap.L().Info("retailer records migrated", zap.Int("changed", changed))
		}

		records, err := env.store.LoadRetailers()
		if err != nil {
			return err
		}
		uploads, err := env.store.LoadMarkets()
		if err != nil {
			return err
		}

		var markets []model.MarketRow
		if len(uploads) > 0 {
			markets = uploads[len(uploads)-1].Rows
		}

		reports := analyze.Analyze(records, markets)
		zap.L().Info("analysis complete", zap.Int("cities", len(reports)))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeMigrate, "migrate", false, "normalize stored records before analyzing")
	rootCmd.AddCommand(analyzeCmd)
}
