package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortnet"
)

func (c *CLI) listCommand() *cobra.Command {
	var (
		maxN   int
		scheme string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List size and depth of available networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxN < 1 {
				return fmt.Errorf("--max must be ≥ 1, got %d", maxN)
			}
			schemes, err := schemesFlag(scheme)
			if err != nil {
				return err
			}
			rows, err := c.collectStats(maxN, schemes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStats(rows))
			loggerFromContext(cmd.Context()).Debug("cache", "entries", c.cache.Len())

			return nil
		},
	}
	cmd.Flags().IntVar(&maxN, "max", 16, "largest element count to list")
	cmd.Flags().StringVar(&scheme, "scheme", "", "only list this scheme")

	return cmd
}

// collectStats gathers one row per available (n, scheme) with n ≤ maxN.
func (c *CLI) collectStats(maxN int, schemes []sortnet.Scheme) ([]statsRow, error) {
	var rows []statsRow
	for n := 1; n <= maxN; n++ {
		for _, s := range schemes {
			if !sortnet.Available(n, s) {
				continue
			}
			nw, err := c.cache.Get(n, s)
			if err != nil {
				return nil, err
			}
			rows = append(rows, statsRow{n: n, scheme: s.String(), size: nw.Size(), depth: nw.Depth()})
		}
	}

	return rows, nil
}
