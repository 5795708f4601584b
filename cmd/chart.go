package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"aporo/pkg/catalog"
	"aporo/pkg/chart"
	"aporo/pkg/services"
)

// newChartCmd creates a new command that draws a trail's elevation profile
func newChartCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "chart [id]",
		Short: "Draw the elevation profile of a trail as SVG",
		Long:  `Draw the elevation profile of a trail as an SVG area chart, to a file or stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid trail id %q", args[0])
			}
			if _, err := setup(); err != nil {
				return err
			}

			svg, err := services.Default().ChartSVG(id)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(svg)
				return err
			}
			if err := os.WriteFile(out, svg, 0o644); err != nil {
				return fmt.Errorf("writing chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", color.GreenString(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "File to write the SVG to (default stdout)")
	return cmd
}

// newValidateCmd creates a new command that checks a catalog file before it is served
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a trail catalog file",
		Long:  `Check that every trail of a YAML or JSON catalog can be shown by the viewer and charted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCatalog(cmd.OutOrStdout(), args[0])
		},
	}
}

// validateCatalog loads a catalog file and reports every trail it rejects
func validateCatalog(w io.Writer, path string) error {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		fmt.Fprintf(w, "%s %s\n", color.RedString("invalid:"), path)
		return err
	}

	for _, t := range cat.Trails() {
		if _, err := chart.Points(t); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%s %s (%d trails)\n", color.GreenString("ok:"), path, cat.Len())
	return nil
}
