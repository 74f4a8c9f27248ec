// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/db47h/rtlsim"
	hl "github.com/db47h/rtlsim/hwlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	width        int
	limit        int64
	stepEdges    int
	cruiseTicks  int64
	cruisePeriod time.Duration
)

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Run a free running or stepped counter",
	Long: `Run a counter register incremented on each clock edge, until the given
tick limit. The counter value is printed after each edge, on a single live
line when the output is a terminal.

With --step, the counter is advanced by that many edges at a time by a clock
stepper instead of a clock generator. With --cruise-ticks and --cruise-period,
every block of cruise-ticks simulated ticks takes at least cruise-period of
wall time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if limit < 0 {
			return errors.Errorf("invalid tick limit %d", limit)
		}
		if stepEdges < 0 {
			return errors.Errorf("invalid step count %d", stepEdges)
		}
		d := rtlsim.NewDesign(rtlsim.WithLogger(log))
		clk, err := rtlsim.NewClock(d, hl.False)
		if err != nil {
			return err
		}
		clk.SetName("clk")
		cnt, err := hl.NewVectorRegister(d, clk, width, nil)
		if err != nil {
			return err
		}
		cnt.SetName("count")
		if err = cnt.SetInput(hl.Add(cnt, hl.ConstVector(width, 1))); err != nil {
			return err
		}

		out := newLiveLine(cmd.OutOrStdout())
		defer out.done()
		// the debug output samples before the edge, report the next value.
		next := hl.Add(cnt, hl.ConstVector(width, 1))
		_, err = hl.NewDebugOutput(d, clk, next, nil, func(v int64) {
			out.printf("tick %d: %s = %d", d.Now(), cnt.Name(), uint64(v)&(1<<uint(width)-1))
		})
		if err != nil {
			return err
		}

		if cruiseTicks > 0 || cruisePeriod > 0 {
			if _, err = rtlsim.NewCruiseControl(d, cruiseTicks, cruisePeriod); err != nil {
				return err
			}
		}

		if stepEdges == 0 {
			if _, err = rtlsim.NewClockGenerator(d, clk, period); err != nil {
				return err
			}
			if _, err = rtlsim.NewTimeLimit(d, limit); err != nil {
				return err
			}
			return d.Simulate(cmd.Context())
		}

		s, err := rtlsim.NewClockStepper(d, clk, period)
		if err != nil {
			return err
		}
		if err = d.Prepare(); err != nil {
			return err
		}
		for d.Now()+int64(stepEdges)*period <= limit {
			if err = s.Step(cmd.Context(), stepEdges); err != nil {
				return err
			}
			log.WithField("tick", d.Now()).Debugf("stepped %d edges", stepEdges)
		}
		return nil
	},
}

type liveLine struct {
	w    io.Writer
	live bool
}

func newLiveLine(w io.Writer) *liveLine {
	l := &liveLine{w: w}
	if f, ok := w.(*os.File); ok {
		l.live = term.IsTerminal(int(f.Fd()))
	}
	return l
}

func (l *liveLine) printf(format string, args ...interface{}) {
	if l.live {
		fmt.Fprintf(l.w, "\r\x1b[K"+format, args...)
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *liveLine) done() {
	if l.live {
		fmt.Fprintln(l.w)
	}
}

func init() {
	rootCmd.AddCommand(counterCmd)
	f := counterCmd.Flags()
	f.IntVar(&width, "width", 8, "counter width in bits")
	f.Int64Var(&limit, "limit", 1000, "stop at this tick")
	f.IntVar(&stepEdges, "step", 0, "advance the counter by this many edges at a time")
	f.Int64Var(&cruiseTicks, "cruise-ticks", 0, "cruise control block length in ticks")
	f.DurationVar(&cruisePeriod, "cruise-period", 0, "minimum wall time per cruise control block")
}
