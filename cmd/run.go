/*
Copyright © 2026 The lccollect authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/livingcost/lccollect/pkg/collect"
	"github.com/livingcost/lccollect/pkg/db"
)

var (
	runEvery time.Duration
	runJobs  []string
)

// getRunCmd returns the run command.
func getRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run collection cycles on a fixed interval",
		Long: `Run executes collection cycles repeatedly until interrupted.

The first cycle starts immediately; later cycles start every
--every interval. A cycle that overruns the interval delays the next
one rather than overlapping it. SIGINT or SIGTERM stops the loop
after the current item finishes.

The --jobs flag selects which collections run in each cycle.

Examples:
  lccollect run
  lccollect run --every 12h
  lccollect run --every 1h --jobs prices`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoop(cmd, args)
		},
	}

	runCmd.Flags().DurationVar(&runEvery, "every", 24*time.Hour,
		"interval between collection cycles")
	runCmd.Flags().StringSliceVar(&runJobs, "jobs",
		[]string{"prices", "wages"},
		"collections to run each cycle (prices, wages)")

	return runCmd
}

func runLoop(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return withOperator(ctx, func(op db.Operator) error {
		jobs, err := selectJobs(op)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}

		tables := map[string][]string{
			"prices": priceJobTables,
			"wages":  wageJobTables,
		}
		for _, name := range runJobs {
			if err = ensureTables(ctx, op, tables[name]); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
		}

		gn.Info("Starting scheduler, interval <em>%s</em>", runEvery)

		ticker := time.NewTicker(runEvery)
		defer ticker.Stop()

		for {
			runCycle(ctx, jobs)

			select {
			case <-ctx.Done():
				slog.Info("Scheduler stopped")
				return nil
			case <-ticker.C:
			}
		}
	})
}

// runCycle runs every selected job once. A failing job is logged and
// the cycle moves on; the next tick retries everything.
func runCycle(ctx context.Context, jobs map[string]collect.Collector) {
	for _, name := range runJobs {
		if ctx.Err() != nil {
			return
		}
		job := jobs[name]

		slog.Info("Cycle job starting", "job", name)
		if err := job.Run(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Error("Cycle job failed", "job", name, "error", err)
			gn.PrintErrorMessage(err)
		}
	}
}

// selectJobs resolves the --jobs flag into collectors.
func selectJobs(op db.Operator) (map[string]collect.Collector, error) {
	known := map[string]func(db.Operator) collect.Collector{
		"prices": newPriceJob,
		"wages":  newWageJob,
	}

	for _, name := range runJobs {
		if _, ok := known[name]; !ok {
			return nil, UnknownJobError(name)
		}
	}

	jobs := make(map[string]collect.Collector, len(runJobs))
	for _, name := range runJobs {
		jobs[name] = known[name](op)
	}
	return jobs, nil
}
