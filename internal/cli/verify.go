package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sortnet"
	"github.com/katalvlaran/sortnet/network"
)

// verifyResult is the outcome of one exhaustive check.
type verifyResult struct {
	n      int
	scheme sortnet.Scheme
	err    error
}

func (c *CLI) verifyCommand() *cobra.Command {
	var (
		maxN    int
		scheme  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check networks with the 0-1 principle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max") {
				maxN = c.Config.MaxExhaustive
			}
			if !cmd.Flags().Changed("workers") {
				workers = c.Config.Workers
			}
			if maxN < 1 || maxN > network.MaxVerifySize {
				return fmt.Errorf("--max must be in [1, %d], got %d", network.MaxVerifySize, maxN)
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be ≥ 1, got %d", workers)
			}
			schemes, err := schemesFlag(scheme)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)
			results, err := c.verifyAll(cmd, maxN, schemes, workers)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					printError(w, "%s n=%d: %v", r.scheme, r.n, r.err)
					continue
				}
				printSuccess(w, "%s n=%d", r.scheme, r.n)
			}
			p.done("verified", "networks", len(results), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d networks failed", failed, len(results))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxN, "max", 16, "largest element count to verify")
	cmd.Flags().StringVar(&scheme, "scheme", "", "only verify this scheme")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent checks")

	return cmd
}

// verifyAll checks every available pair with bounded parallelism and
// returns the results ordered by n, then scheme.
func (c *CLI) verifyAll(cmd *cobra.Command, maxN int, schemes []sortnet.Scheme, workers int) ([]verifyResult, error) {
	var results []verifyResult
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for n := 1; n <= maxN; n++ {
		for _, s := range schemes {
			if !sortnet.Available(n, s) {
				continue
			}
			results = append(results, verifyResult{n: n, scheme: s})
		}
	}
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nw, err := c.cache.Get(results[i].n, results[i].scheme)
			if err != nil {
				return err
			}
			// Each task owns results[i].
			results[i].err = network.Verify(nw)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
