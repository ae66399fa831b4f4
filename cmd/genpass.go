package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutils/bashrand"
)

// genpassCmd represents the genpass command
var genpassCmd = &cobra.Command{
	Use:   "genpass N1 ... N10",
	Short: "Turn 10 known $RANDOM values into the password they generate",
	Long: `Encode 10 $RANDOM values as 0-9A-Za-z characters, For example:
  bashrand genpass 0 10 36 61 62 72 32767 1 2 3`,
	Args: cobra.ExactArgs(bashrand.PasswordLength),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseOutputs(args)
		if err != nil {
			return err
		}
		pw, err := bashrand.GenPass(values)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pw)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genpassCmd)
}
