package main

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/model"
	"github.com/sells-group/storescout/internal/search"
)

var (
	searchLocation string
	searchRadius   int
	searchSave     bool
)

var searchCmd = &cobra.Command{
	Use:   "search <retailer>...",
	Short: "Search for official retailer store locations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}
		if env.search == nil {
			return eris.New("a Maps API key is required (STORESCOUT_MAPS_KEY)")
		}

		locations := search.DefaultLocations()
		if searchLocation != "" {
			radius := searchRadius
			if radius <= 0 {
				radius = cfg.Search.Radius
			}
			locations = []search.Location{{Query: searchLocation, Radius: radius}}
		}

		result := env.search.BatchSearch(cmd.Context(), args, locations)
		env.tracker.AddSearches(result.APICalls)
		env.tracker.AddGeocodes(result.APICalls)
		env.tracker.AddDetails(result.TotalFound)

		zap.L().Info("search complete",
			zap.Strings("retailers", args),
			zap.Int("total_found", result.TotalFound),
			zap.Int("api_calls", result.APICalls),
		)

		if searchSave {
			if err := saveSearchResult(env, result); err != nil {
				return err
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func saveSearchResult(env *appEnv, result *model.SearchResult) error {
	names := make([]string, 0, len(result.ByRetailer))
	for name := range result.ByRetailer {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		record, ok := model.RetailerFromSearch(name, result.ByRetailer[name].Stores, time.Now())
		if !ok {
			continue
		}
		if err := env.store.AppendRetailer(record); err != nil {
			return eris.Wrapf(err, "save retailer %s", name)
		}
	}
	return nil
}

func init() {
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "single search center (default: nationwide grid)")
	searchCmd.Flags().IntVar(&searchRadius, "radius", 0, "search radius in meters (default from config)")
	searchCmd.Flags().BoolVar(&searchSave, "save", false, "save results to the retailer database")
	rootCmd.AddCommand(searchCmd)
}
