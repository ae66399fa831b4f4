package cmd

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/tutils/bashrand"
	"github.com/tutils/bashrand/counter/period"
	"github.com/tutils/bashrand/log"
	"github.com/tutils/bashrand/search"
)

// layout of the recovered timestamp
const dateLayout = "2006-01-02 15:04:05"

// passwordCmd represents the password command
var passwordCmd = &cobra.Command{
	Use:   "password PASSWORD",
	Short: "Recover the timestamp seed of a $RANDOM generated password",
	Long: `Recover the Unix timestamp a password generator seeded $RANDOM (old version) with,
one character per value from 0-9A-Za-z, For example:
  bashrand password OfxAeIjk`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := args[0]
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Received password: %s, len= %d\n", password, utf8.RuneCountInString(password))

		now := time.Now()
		c := period.NewPeriodCounter(time.Second)
		stop := startProgress(cmd.Context(), c, uint64(now.Unix()))
		defer stop()

		opts := append(searchOptions(c), search.WithNow(func() time.Time { return now }))
		s, err := bashrand.Password(cmd.Context(), password, opts...)
		if err != nil {
			return err
		}

		count := 0
		for m := range s.All() {
			fmt.Fprintf(w, "Matching seed found: %d\n", m.Seed)
			fmt.Fprintf(w, "Formatted seed date and time: %s\n", m.Time.Format(dateLayout))
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
	rootCmd.AddCommand(passwordCmd)
}
