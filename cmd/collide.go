package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tutils/bashrand"
	"github.com/tutils/bashrand/counter/period"
	"github.com/tutils/bashrand/log"
	"github.com/tutils/bashrand/search"
)

// collideCmd represents the collide command
var collideCmd = &cobra.Command{
	Use:   "collide N",
	Short: "Find a seed where both old and new versions are the same",
	Long: `Find seeds whose first $RANDOM is N under every selected version, For example:
  bashrand collide 1337`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseOutputs(args)
		if err != nil {
			return err
		}
		n := values[0]
		vs, err := variants()
		if err != nil {
			return err
		}

		c := period.NewPeriodCounter(time.Second)
		stop := startProgress(cmd.Context(), c, search.SpaceSize)
		defer stop()

		log.L().Info().Msg("Searching for seeds...")
		s, err := bashrand.Collide(cmd.Context(), n, vs, searchOptions(c)...)
		if err != nil {
			return err
		}

		count := 0
		for m := range s.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d = %d\n", m.Seed, n)
			count++
		}
		stop()
		if err := s.Err(); err != nil {
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
	rootCmd.AddCommand(collideCmd)
}
