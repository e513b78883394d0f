// Command oscdump listens on a UDP port and prints every OSC message it
// receives, one line per message, with the time tag of the enclosing bundle
// when there is one.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chabad360/oscpkt/osc"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "oscdump",
	Short: "Print every OSC message received on a UDP port",
	Long: `oscdump listens for OSC packets on a UDP port and prints each message they
contain in the order it appears, prefixed with the time tag of its enclosing
bundle when there is one. Malformed packets are logged and dropped.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.Flags().StringP("listen", "l", "127.0.0.1:8000", "UDP address to listen on")
	rootCmd.Flags().Int("max-depth", osc.DefaultMaxBundleDepth, "maximum bundle nesting depth")
	rootCmd.Flags().Duration("read-timeout", 0, "socket read timeout, 0 to disable")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	if !viper.GetBool("verbose") {
		logger = logger.Level(zerolog.InfoLevel)
	}

	srv := &osc.Server{
		Addr:        viper.GetString("listen"),
		MaxDepth:    viper.GetInt("max-depth"),
		ReadTimeout: viper.GetDuration("read-timeout"),
		Logger:      logger,
		Handler:     printMessage,
	}

	logger.Info().Str("listen", srv.Addr).Msg("listening for OSC packets")
	return srv.ListenAndServe()
}

func printMessage(timetag *osc.Timetag, msg *osc.Message) {
	if timetag != nil {
		fmt.Printf("%s  %s\n", timetag.Time().Format(time.RFC3339Nano), msg)
		return
	}
	fmt.Println(msg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
