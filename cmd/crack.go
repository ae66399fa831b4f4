package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tutils/bashrand"
	"github.com/tutils/bashrand/counter/period"
	"github.com/tutils/bashrand/log"
	"github.com/tutils/bashrand/search"
)

// crackCmd represents the crack command
var crackCmd = &cobra.Command{
	Use:   "crack N1 N2 [N3]",
	Short: "Brute-force the seed from 2-3 $RANDOM values",
	Long: `Brute-force the seed from consecutive $RANDOM values, For example:
  bashrand crack 17766 11151 23481   # 3 values => a single seed
  bashrand crack 17766 11151        # 2 values => multiple possible seeds`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseOutputs(args)
		if err != nil {
			return err
		}
		vs, err := variants()
		if err != nil {
			return err
		}

		c := period.NewPeriodCounter(time.Second)
		stop := startProgress(cmd.Context(), c, search.SpaceSize)
		defer stop()

		log.L().Info().Msg("Searching for seeds...")
		res, err := bashrand.Crack(cmd.Context(), values, vs, searchOptions(c)...)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if res.Definite {
			stop()
			if !res.Found {
				return bashrand.ErrNotFound
			}
			printSeed(w, res.Match.Seed, len(values), res.Match.Variant, settings.Number)
			log.L().Info().Msg("Finished!")
			return nil
		}

		count := 0
		for m := range res.Matches.All() {
			printSeed(w, m.Seed, len(values), m.Variant, settings.Number)
			count++
		}
		stop()
		if err := res.Matches.Err(); err != nil {
			return err
		}
		if count == 0 {
			return bashrand.ErrNotFound
		}
		log.L().Info().Int("seeds", count).Msgf("Finished! (%d seeds)", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crackCmd)
}
