package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getSkip int

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get SEED",
	Short: "Get random numbers from a seed",
	Long: `Replay $RANDOM from a known seed, For example:
  bashrand get 1337 --skip=3 -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if getSkip < 0 {
			return fmt.Errorf("skip must not be negative (got %d)", getSkip)
		}
		seed, err := parseSeed(args[0])
		if err != nil {
			return err
		}
		vs, err := variants()
		if err != nil {
			return err
		}
		for _, variant := range vs {
			printSeed(cmd.OutOrStdout(), seed, getSkip, variant, settings.Number)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	flags := getCmd.Flags()
	flags.IntVarP(&getSkip, "skip", "s", 0, "skip the first n numbers")
}
