package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortnet/render"
)

const (
	formatText = "text"
	formatDOT  = "dot"
	formatJSON = "json"
	formatSVG  = "svg"
)

func (c *CLI) showCommand() *cobra.Command {
	var (
		scheme string
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "show N",
		Short: "Draw one network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid element count %q: %w", args[0], err)
			}
			s, err := c.schemeFlag(cmd, scheme)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = c.Config.Format
			}

			nw, err := c.cache.Get(n, s)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("generated", "n", n, "scheme", s, "size", nw.Size(), "depth", nw.Depth())

			opts := render.Options{Title: fmt.Sprintf("%s %d", s, n), Descending: true}
			var out []byte
			switch format {
			case formatText:
				out = []byte(render.Text(nw))
			case formatDOT:
				out = []byte(render.DOT(nw, opts))
			case formatJSON:
				if out, err = render.JSON(nw, opts); err != nil {
					return err
				}
				out = append(out, '\n')
			case formatSVG:
				p := newProgress(logger)
				if out, err = render.SVG(cmd.Context(), nw, opts); err != nil {
					return err
				}
				p.done("rendered svg", "bytes", len(out))
			default:
				return fmt.Errorf("unknown format %q (want text, dot, json or svg)", format)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			logger.Info("wrote", "path", output)

			return nil
		},
	}
	cmd.Flags().StringVarP(&scheme, "scheme", "s", "", "construction scheme")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, dot, json or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
