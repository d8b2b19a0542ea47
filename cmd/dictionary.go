package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dictionaryCmd groups dictionary maintenance commands.
var dictionaryCmd = &cobra.Command{
	Use:   "dictionary",
	Short: "Inspect the name dictionaries",
}

var dictionaryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Load every shard and report word counts",
	Long: `Loads all configured shards, single dictionaries first, and reports how many
shards loaded and how many words each role holds. Missing shards are reported,
not fatal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		l := rt.logger
		defer l.Sync()

		if err := rt.store.Preload(ctx); err != nil {
			l.Warn("Some shards failed to load", zap.Error(err))
		}

		s := rt.store.Stats()
		fmt.Printf("shards:      %d (loaded %d, missing %d, failed %d)\n", s.Shards, s.Loaded, s.Missing, s.Failed)
		fmt.Printf("surnames:    %d\n", s.Surnames)
		fmt.Printf("given names: %d\n", s.GivenNames)
		fmt.Printf("patronymics: %d\n", s.Patronymics)

		if s.Loaded == 0 {
			return fmt.Errorf("no dictionary shard could be loaded from %q source", rt.cfg.Dictionary.Source)
		}
		return nil
	},
}

func init() {
	dictionaryCmd.AddCommand(dictionaryStatsCmd)
	RootCmd.AddCommand(dictionaryCmd)
}
