// Command oscsend builds an OSC message and transmits it over UDP, optionally
// wrapped in a time-tagged bundle.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chabad360/oscpkt/osc"
)

var (
	flagTo       string
	flagTypetags string
	flagPayload  string
	flagBundle   bool
	flagAt       time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "oscsend /address/pattern",
	Short: "Send an OSC message over UDP",
	Long: `oscsend builds an OSC message for the given address pattern and sends it to
a server. Argument bytes, if any, are supplied pre-encoded as hex together
with their type tag string. With --bundle the message is wrapped in a bundle
tagged either "immediately" or now+--at.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagTo, "to", "t", "127.0.0.1:8000", "server address to send to")
	rootCmd.Flags().StringVar(&flagTypetags, "typetags", ",", "type tag string for the payload")
	rootCmd.Flags().StringVar(&flagPayload, "payload", "", "argument bytes, hex encoded, 4 byte aligned")
	rootCmd.Flags().BoolVarP(&flagBundle, "bundle", "b", false, "wrap the message in a bundle")
	rootCmd.Flags().DurationVar(&flagAt, "at", 0, "bundle time tag offset from now (implies --bundle)")
}

func run(cmd *cobra.Command, args []string) error {
	msg := osc.NewMessage(args[0])
	msg.Typetags = flagTypetags
	if flagPayload != "" {
		payload, err := hex.DecodeString(flagPayload)
		if err != nil {
			return fmt.Errorf("decoding payload: %w", err)
		}
		msg.Payload = payload
	}

	var contents osc.Contents = msg
	if flagBundle || flagAt != 0 {
		b := osc.NewBundle()
		if flagAt != 0 {
			b.Timetag = osc.NewTimetagFromTime(time.Now().Add(flagAt))
		}
		if err := b.Append(msg); err != nil {
			return err
		}
		contents = b
	}

	client, err := osc.Dial(flagTo)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Send(contents)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
