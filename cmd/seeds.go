package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutils/bashrand"
)

// seedsCmd represents the seeds command
var seedsCmd = &cobra.Command{
	Use:   "seeds SEED",
	Short: "Get next N seeds from a seed",
	Long: `Print the internal states reached from a seed (same for both versions), For example:
  bashrand seeds 1337 -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := parseSeed(args[0])
		if err != nil {
			return err
		}
		seeds := bashrand.Seeds(seed, settings.Number)
		fmt.Fprintf(cmd.OutOrStdout(), "Next %d seeds: %s\n", settings.Number, joinUints(seeds))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedsCmd)
}
