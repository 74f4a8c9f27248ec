// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"context"
	"fmt"

	"github.com/db47h/rtlsim"
	hl "github.com/db47h/rtlsim/hwlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	edges   int
	johnson bool
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Run a two register toggle pair",
	Long: `Run two registers A and B where B loads A and A loads B (or not B with
--johnson), and print their values after each clock edge.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if edges < 1 {
			return errors.Errorf("invalid edge count %d", edges)
		}
		d := rtlsim.NewDesign(rtlsim.WithLogger(log))
		clk, err := rtlsim.NewClock(d, hl.False)
		if err != nil {
			return err
		}
		clk.SetName("clk")
		a, err := hl.NewBitRegister(d, clk, nil)
		if err != nil {
			return err
		}
		b, err := hl.NewBitRegister(d, clk, a)
		if err != nil {
			return err
		}
		var in rtlsim.BitSignal = b
		if johnson {
			in = hl.Not(b)
		}
		if err = a.SetInput(in); err != nil {
			return err
		}
		b.Init(true)

		if _, err = rtlsim.NewClockGenerator(d, clk, period); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "tick\tA\tB")
		_, err = rtlsim.NewInterval(d, period, 0, func(context.Context) error {
			fmt.Fprintf(out, "%d\t%d\t%d\n", d.Now(), bit(a.Value()), bit(b.Value()))
			if clk.Edges() >= uint64(edges) {
				d.Stop()
			}
			return nil
		})
		if err != nil {
			return err
		}
		return d.Simulate(cmd.Context())
	},
}

func bit(v bool) int {
	if v {
		return 1
	}
	return 0
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().IntVar(&edges, "edges", 4, "number of clock edges")
	toggleCmd.Flags().BoolVar(&johnson, "johnson", false, "invert B into A (2 bit Johnson counter)")
}
