// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	period  int64
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "rtlsim",
	Short: "Run demo circuits on the rtlsim kernel",
	Long: `Build small clocked circuits and run them on the rtlsim discrete-event
kernel.

Examples:
  rtlsim toggle --period 10 --edges 4              # two register toggle pair
  rtlsim counter --width 8 --limit 1000            # free running counter
  rtlsim counter --step 5 --limit 100              # counter stepped 5 edges at a time
  rtlsim counter --cruise-ticks 100 --cruise-period 50ms`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log simulation events")
	rootCmd.PersistentFlags().Int64Var(&period, "period", 10, "clock period in ticks")
}
