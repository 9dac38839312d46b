package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cladplan/cladplan/internal/engine"
	"github.com/cladplan/cladplan/internal/export"
	"github.com/cladplan/cladplan/internal/importer"
	"github.com/cladplan/cladplan/internal/model"
	"github.com/cladplan/cladplan/internal/project"
)

type layoutOptions struct {
	wall         string
	panel        string
	zones        []string
	projectID    string
	name         string
	save         bool
	pdfPath      string
	labelPath    string
	xlsxPath     string
	schedulePath string
}

func runLayout(opts layoutOptions) error {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}

	var proj model.Project
	if opts.projectID != "" {
		proj, err = project.LoadProject(project.DefaultProjectsDir(), opts.projectID)
	} else {
		proj, err = projectFromFlags(opts.wall, opts.panel, opts.name, opts.zones, cfg)
	}
	if err != nil {
		return err
	}

	result, err := engine.Layout(proj.Wall, proj.Panel, proj.Exclusions)
	if err != nil {
		return err
	}

	fmt.Print(export.BuildSchedule(proj, result))

	estimate := model.CalculatePurchaseEstimate(*result, proj.Panel,
		cfg.DefaultWastePercent, cfg.DefaultPricePerPanel, cfg.DefaultPanelsPerPack)
	printPurchaseEstimate(estimate)

	trim := model.CalculateTrim(proj.Wall, proj.Exclusions,
		cfg.DefaultWastePercent, cfg.DefaultStickLength, cfg.DefaultPricePerStick)
	printTrimEstimate(trim)

	if issues := engine.Verify(result, proj.Wall, proj.Exclusions); len(issues) > 0 {
		fmt.Println()
		fmt.Println("Verification:")
		for _, line := range engine.FormatIssues(issues) {
			fmt.Printf("  %s\n", line)
		}
	}

	if opts.pdfPath != "" {
		if err := export.WritePDF(opts.pdfPath, proj, result); err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
		fmt.Printf("Wrote cut plan to %s\n", opts.pdfPath)
	}
	if opts.labelPath != "" {
		if err := export.WriteLabels(opts.labelPath, proj, result); err != nil {
			return fmt.Errorf("writing labels: %w", err)
		}
		fmt.Printf("Wrote install labels to %s\n", opts.labelPath)
	}
	if opts.xlsxPath != "" {
		if err := export.WriteXLSX(opts.xlsxPath, proj, result); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Printf("Wrote workbook to %s\n", opts.xlsxPath)
	}
	if opts.schedulePath != "" {
		if err := export.WriteSchedule(opts.schedulePath, proj, result); err != nil {
			return fmt.Errorf("writing schedule: %w", err)
		}
		fmt.Printf("Wrote schedule to %s\n", opts.schedulePath)
	}

	if opts.save {
		proj.Touch()
		if err := project.SaveProject(project.DefaultProjectsDir(), proj); err != nil {
			return fmt.Errorf("saving project: %w", err)
		}
		cfg.AddRecentProject(proj.ID)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Saved project %q (%s)\n", proj.Name, proj.ID)
	}
	return nil
}

type compareOptions struct {
	wall      string
	zones     []string
	panels    []string
	presets   bool
	chartPath string
}

func runCompare(opts compareOptions) error {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}
	if opts.wall == "" {
		return fmt.Errorf("--wall is required")
	}
	wallW, wallH, err := parseDimensions(opts.wall)
	if err != nil {
		return err
	}
	wall := model.WallSurface{Width: wallW, Height: wallH}

	zones, err := parseZones(opts.zones)
	if err != nil {
		return err
	}

	var scenarios []engine.ComparisonScenario
	switch {
	case opts.presets:
		catalog, err := project.LoadPresets(project.DefaultPresetPath())
		if err != nil {
			return err
		}
		scenarios = engine.BuildScenariosFromPresets(catalog)
	case len(opts.panels) > 0:
		for _, pf := range opts.panels {
			w, h, err := parseDimensions(pf)
			if err != nil {
				return err
			}
			scenarios = append(scenarios, engine.ComparisonScenario{
				Name:  fmt.Sprintf("%.0fx%.0f", w, h),
				Panel: model.PanelSpec{Width: w, Height: h},
			})
		}
	default:
		scenarios = engine.BuildDefaultScenarios(cfg.DefaultPanel())
	}

	results := engine.CompareScenarios(wall, zones, scenarios)
	printComparisonTable(results)

	if opts.chartPath != "" {
		if err := export.WriteComparisonChart(opts.chartPath, results); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
		fmt.Printf("\nWrote comparison chart to %s\n", opts.chartPath)
	}
	return nil
}

type importOptions struct {
	wall  string
	panel string
	name  string
	save  bool
}

func runImport(path string, opts importOptions) error {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}

	var wall model.WallSurface
	var openings []model.ExclusionZone
	var importErrors, warnings []string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".dxf":
		res := importer.ImportDXF(path)
		wall, openings = res.Wall, res.Openings
		importErrors, warnings = res.Errors, res.Warnings
		if wall.Width <= 0 || wall.Height <= 0 {
			printImportNotes(importErrors, warnings)
			return fmt.Errorf("no wall outline found in %s", path)
		}
	case ".csv", ".xlsx":
		if opts.wall == "" {
			return fmt.Errorf("--wall is required when importing %s files", filepath.Ext(path))
		}
		w, h, err := parseDimensions(opts.wall)
		if err != nil {
			return err
		}
		wall = model.WallSurface{Width: w, Height: h}

		var res importer.ImportResult
		if strings.ToLower(filepath.Ext(path)) == ".csv" {
			res = importer.ImportCSV(path)
		} else {
			res = importer.ImportExcel(path)
		}
		openings = res.Openings
		importErrors, warnings = res.Errors, res.Warnings
	default:
		return fmt.Errorf("unsupported file type %q (expected .csv, .xlsx, or .dxf)", filepath.Ext(path))
	}

	panel := cfg.DefaultPanel()
	if opts.panel != "" {
		w, h, err := parseDimensions(opts.panel)
		if err != nil {
			return err
		}
		panel = model.PanelSpec{Width: w, Height: h}
	}

	name := opts.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	proj := model.NewProject(name, wall, panel)
	proj.Exclusions = openings

	fmt.Printf("Imported %q: wall %.0f x %.0f cm, %d opening(s)\n", path, wall.Width, wall.Height, len(openings))
	for _, z := range openings {
		fmt.Printf("  %-20s x=%-7.1f y=%-7.1f %6.1f x %.1f cm\n", z.Label, z.X, z.Y, z.Width, z.Height)
	}
	printImportNotes(importErrors, warnings)

	if opts.save {
		if err := project.SaveProject(project.DefaultProjectsDir(), proj); err != nil {
			return fmt.Errorf("saving project: %w", err)
		}
		cfg.AddRecentProject(proj.ID)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Saved project %q (%s)\n", proj.Name, proj.ID)
	}
	return nil
}

// projectFromFlags builds an unsaved project from command line flags,
// falling back to configured defaults for the panel spec.
func projectFromFlags(wallFlag, panelFlag, name string, zoneFlags []string, cfg model.AppConfig) (model.Project, error) {
	if wallFlag == "" {
		return model.Project{}, fmt.Errorf("either --wall or --project is required")
	}
	wallW, wallH, err := parseDimensions(wallFlag)
	if err != nil {
		return model.Project{}, err
	}

	panel := cfg.DefaultPanel()
	if panelFlag != "" {
		w, h, err := parseDimensions(panelFlag)
		if err != nil {
			return model.Project{}, err
		}
		panel = model.PanelSpec{Width: w, Height: h}
	}

	if name == "" {
		name = fmt.Sprintf("Wall %.0fx%.0f", wallW, wallH)
	}
	proj := model.NewProject(name, model.WallSurface{Width: wallW, Height: wallH}, panel)

	zones, err := parseZones(zoneFlags)
	if err != nil {
		return model.Project{}, err
	}
	proj.Exclusions = zones
	return proj, nil
}
