// CladPlan - Wall Panel Layout Planner
//
// A command line tool and HTTP service for planning facade cladding:
// half-bond panel layouts around doors and windows, offcut reuse,
// purchase estimates, and installer documentation.
//
// Build:
//   go build -o cladplan ./cmd/cladplan

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cladplan/cladplan/internal/project"
	"github.com/cladplan/cladplan/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cladplan",
		Short: "Wall cladding panel layout planner",
	}

	rootCmd.AddCommand(layoutCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func layoutCmd() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute a panel layout and print the cutting schedule",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLayout(opts)
		},
	}

	cmd.Flags().StringVar(&opts.wall, "wall", "", "wall size as WxH in cm (e.g. 500x300)")
	cmd.Flags().StringVar(&opts.panel, "panel", "", "panel size as WxH in cm (default from config)")
	cmd.Flags().StringArrayVar(&opts.zones, "zone", nil, "exclusion zone as x,y,w,h in cm (repeatable)")
	cmd.Flags().StringVar(&opts.projectID, "project", "", "load a saved project by ID instead of using flags")
	cmd.Flags().StringVar(&opts.name, "name", "", "project name")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the project to the project store")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "write a PDF cut plan to this path")
	cmd.Flags().StringVar(&opts.labelPath, "labels", "", "write QR install labels to this path")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "write an XLSX workbook to this path")
	cmd.Flags().StringVar(&opts.schedulePath, "schedule", "", "write the cutting schedule to this path")

	return cmd
}

func compareCmd() *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare candidate panel sizes for the same wall",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCompare(opts)
		},
	}

	cmd.Flags().StringVar(&opts.wall, "wall", "", "wall size as WxH in cm (e.g. 500x300)")
	cmd.Flags().StringArrayVar(&opts.zones, "zone", nil, "exclusion zone as x,y,w,h in cm (repeatable)")
	cmd.Flags().StringArrayVar(&opts.panels, "panel", nil, "candidate panel size as WxH (repeatable)")
	cmd.Flags().BoolVar(&opts.presets, "presets", false, "compare every panel in the preset catalog")
	cmd.Flags().StringVar(&opts.chartPath, "chart", "", "write an HTML comparison chart to this path")

	return cmd
}

func importCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import an opening schedule from CSV, XLSX, or DXF",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImport(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.wall, "wall", "", "wall size as WxH in cm (required for CSV/XLSX)")
	cmd.Flags().StringVar(&opts.panel, "panel", "", "panel size as WxH in cm (default from config)")
	cmd.Flags().StringVar(&opts.name, "name", "", "project name (default: file name)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the imported project to the project store")

	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("port") {
				cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
				if err != nil {
					return err
				}
				port = cfg.ServePort
			}
			srv := server.New(port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	return cmd
}
