package cmd

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tutils/bashrand/config"
	"github.com/tutils/bashrand/log"
	"github.com/tutils/bashrand/random"
)

var (
	cfgFile string

	v        = config.New()
	settings config.Settings
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bashrand",
	Short: "Bash $RANDOM cracker.",
	Long: `Bash $RANDOM cracker.
Recover the seed behind bash's $RANDOM from a few observed values, replay the
values that follow, and brute-force timestamp seeded passwords. For example:
  bashrand crack 17766 11151 23481
  bashrand get 1337 --skip=3 --version=new
  bashrand password OfxAeIjk`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.L().Error().Err(err).Msg("failed")
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bashrand.yaml)")
	flags.StringP("version", "v", "both", "bash version to emulate: old (<= 5.0), new (>= 5.1) or both")
	flags.IntP("number", "n", 10, "number of values to generate")
	flags.IntP("workers", "w", 0, "search goroutines (0 = one per CPU)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("log-pretty", false, "human readable logs (default when stderr is a terminal)")
	flags.String("pprof", "", "serve net/http/pprof on this address")

	v.BindPFlag(config.KeyVersion, flags.Lookup("version"))
	v.BindPFlag(config.KeyNumber, flags.Lookup("number"))
	v.BindPFlag(config.KeyWorkers, flags.Lookup("workers"))
	v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	v.BindPFlag(config.KeyLogPretty, flags.Lookup("log-pretty"))
	v.BindPFlag(config.KeyPprof, flags.Lookup("pprof"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Read(v, cfgFile); err != nil {
		return err
	}
	s, err := config.Decode(v)
	if err != nil {
		return err
	}
	settings = s

	log.Init(settings.Log)
	if f := v.ConfigFileUsed(); f != "" {
		log.L().Debug().Str("file", f).Msg("using config file")
	}

	if addr := settings.Pprof; addr != "" {
		go func() {
			if err := http.ListenAndServe(addr, nil); err != nil {
				log.L().Warn().Err(err).Str("addr", addr).Msg("pprof listener stopped")
			}
		}()
	}
	return nil
}

func variants() ([]random.Variant, error) {
	return random.ParseVersion(settings.Version)
}
