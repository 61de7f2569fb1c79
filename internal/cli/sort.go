package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortnet"
	"github.com/katalvlaran/sortnet/batch"
	"github.com/katalvlaran/sortnet/network"
)

func (c *CLI) sortCommand() *cobra.Command {
	var (
		scheme     string
		descending bool
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "sort [VALUE...]",
		Short: "Sort numbers with a network",
		Long: `Sort the numbers given as arguments, or, without arguments, every line of
stdin as an independent array of whitespace-separated numbers. Lines of equal
length share one network and are sorted in parallel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.schemeFlag(cmd, scheme)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = c.Config.Workers
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be ≥ 1, got %d", workers)
			}

			var rows [][]float64
			if len(args) > 0 {
				row, err := parseRow(args)
				if err != nil {
					return err
				}
				rows = [][]float64{row}
			} else if rows, err = readRows(cmd.InOrStdin()); err != nil {
				return err
			}

			cas := network.Ordered[float64]()
			if descending {
				cas = network.Descending[float64]()
			}
			if err := c.sortRows(cmd, rows, s, cas, workers); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, row := range rows {
				fmt.Fprintln(w, formatRow(row))
			}
			loggerFromContext(cmd.Context()).Debug("sorted", "rows", len(rows), "scheme", s, "cache", c.cache.Stats())

			return nil
		},
	}
	cmd.Flags().StringVarP(&scheme, "scheme", "s", "", "construction scheme")
	cmd.Flags().BoolVarP(&descending, "descending", "d", false, "sort largest first")
	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent sorting tasks")

	return cmd
}

// sortRows groups rows by length and runs one batch per group.
func (c *CLI) sortRows(cmd *cobra.Command, rows [][]float64, s sortnet.Scheme, cas network.CAS[float64], workers int) error {
	groups := make(map[int][][]float64)
	for _, row := range rows {
		if len(row) > 1 {
			groups[len(row)] = append(groups[len(row)], row)
		}
	}
	for n, group := range groups {
		nw, err := c.cache.Get(n, s)
		if err != nil {
			return err
		}
		if err := batch.Apply(cmd.Context(), group, cas, nw, batch.WithWorkers(workers)); err != nil {
			return err
		}
	}

	return nil
}

// readRows parses every non-blank line of r.
func readRows(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, sc.Err()
}

func parseRow(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		row[i] = v
	}

	return row, nil
}

func formatRow(row []float64) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}
