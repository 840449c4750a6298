package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/fetcher"
	"github.com/sells-group/storescout/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a market city list from a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}

		path := args[0]
		rows, err := fetcher.ReadRows(path)
		if err != nil {
			return eris.Wrap(err, "read market file")
		}

		entries := fetcher.FirstColumn(rows, 0)
		if len(entries) > 0 {
			switch strings.ToLower(entries[0]) {
			case "city", "market", "city, state":
				entries = entries[1:]
			}
		}
		if len(entries) == 0 {
			return eris.New("no cities found in file")
		}

		marketRows := env.importer.Import(cmd.Context(), entries)
		upload := model.NewMarketUpload(filepath.Base(path), entries, marketRows, time.Now())
		if err := env.store.AppendMarket(upload); err != nil {
			return eris.Wrap(err, "save market upload")
		}

		zap.L().Info("market list imported",
			zap.String("file", path),
			zap.Int("entries", len(entries)),
			zap.Int("cities", len(marketRows)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
