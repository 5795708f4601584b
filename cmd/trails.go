package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"aporo/pkg/chart"
	"aporo/pkg/models"
	"aporo/pkg/services"
)

// newListTrailsCmd creates a new command for listing trails
func newListTrailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-trails",
		Short: "List all trails",
		Long:  `List every trail of the catalog with its difficulty, duration and distance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(); err != nil {
				return err
			}
			listTrails(cmd.OutOrStdout(), services.GetTrails())
			return nil
		},
	}
}

// newShowTrailCmd creates a new command for showing trail details
func newShowTrailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-trail [id]",
		Short: "Show details of a specific trail",
		Long:  `Show the details, photos and elevation summary of a trail identified by its id.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid trail id %q", args[0])
			}
			cfg, err := setup()
			if err != nil {
				return err
			}
			trail, err := services.GetTrail(id)
			if err != nil {
				return err
			}
			showTrail(cmd.OutOrStdout(), trail, cfg.Locale)
			return nil
		},
	}
}

// listTrails writes one block per trail
func listTrails(w io.Writer, trails []models.Trail) {
	fmt.Fprintln(w, "Trails:")
	fmt.Fprintln(w, "=======")

	for _, t := range trails {
		fmt.Fprintf(w, "%s %s\n", color.New(color.Faint).Sprintf("#%d", t.ID), color.GreenString(t.Name))
		fmt.Fprintf(w, "  %s · %s · %s · %s\n", t.Difficulty, t.Duration, t.Distance, t.Elevation)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d trails\n", len(trails))
}

// showTrail writes the detail view of a trail
func showTrail(w io.Writer, t models.Trail, locale string) {
	fmt.Fprintf(w, "Trail: %s\n", color.GreenString(t.Name))
	fmt.Fprintf(w, "Difficulty: %s\n", t.Difficulty)
	fmt.Fprintf(w, "Duration: %s\n", t.Duration)
	fmt.Fprintf(w, "Distance: %s\n", t.Distance)
	fmt.Fprintf(w, "Elevation: %s\n", t.Elevation)
	fmt.Fprintf(w, "Coordinates: %s\n", color.CyanString("(%.4f, %.4f)", t.Coordinates.Lat, t.Coordinates.Lng))
	fmt.Fprintln(w, "================")
	fmt.Fprintln(w, t.Description)
	fmt.Fprintln(w)

	for i, photo := range t.Photos {
		fmt.Fprintf(w, "%d. %s\n", i+1, photo)
	}

	points, err := chart.Points(t)
	if err != nil {
		fmt.Fprintf(w, "\nElevation profile unavailable: %v\n", err)
		return
	}
	stats := chart.Summarize(points)
	p := chart.Printer(locale)
	fmt.Fprintf(w, "\nProfile: %d samples, min %s, max %s, mean %s, ascent +%s\n",
		len(points), chart.FormatM(p, stats.Min), chart.FormatM(p, stats.Max),
		chart.FormatM(p, stats.Mean), chart.FormatM(p, stats.Ascent))
}
