package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"aporo/pkg/catalog"
	"aporo/pkg/geojson"
	"aporo/pkg/services"
)

// newExportCmd creates a new command for exporting trail data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export trail data",
		Long:  `Export the trail catalog in the specified format. Supported formats: json, yaml, geojson.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(); err != nil {
				return err
			}

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			return exportData(cmd.OutOrStdout(), services.Default().Catalog(), format)
		},
	}
}

// exportData writes the catalog in the specified format
func exportData(w io.Writer, cat *catalog.Catalog, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json", "yaml":
		data, err = cat.Encode("." + format)
	case "geojson":
		data, err = geojson.ToFeatureCollection(cat.Trails()).ToJSONIndent()
	default:
		fmt.Fprintf(os.Stderr, "Supported formats: json, yaml, geojson\n")
		return fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("error marshaling data: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
