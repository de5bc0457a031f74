// Package main provides the CLI entry point for facetgrid.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/layout"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/output"
	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/store"
)

var (
	xFacet      string
	yFacet      string
	sheet       string
	outputPath  string
	pretty      bool
	aggregation string
	density     string
	configPath  string
	logLevel    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "facetgrid",
		Short: "Interactive pivot-grid layout engine",
		Long: `facetgrid derives a sparse 2-D cell grid with hierarchical headers
from records and two axis facet mappings, and maintains selection,
sort, filter, resize, and logical-position state.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&xFacet, "x-facet", "x", "", "Facet mapped to the X axis")
	rootCmd.PersistentFlags().StringVarP(&yFacet, "y-facet", "y", "", "Facet mapped to the Y axis")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Worksheet name (default: first sheet)")
	rootCmd.PersistentFlags().StringVar(&aggregation, "aggregation", "count", "Summary-row metric: count, sum, avg, off")
	rootCmd.PersistentFlags().StringVar(&density, "density", "dense", "Extent density: dense, sparse, ultra-sparse")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Grid geometry YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	layoutCmd := &cobra.Command{
		Use:   "layout [input.xlsx]",
		Short: "Compute the grid layout and emit a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  runLayout,
	}
	layoutCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	layoutCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	summaryCmd := &cobra.Command{
		Use:   "summary [input.xlsx]",
		Short: "Print the aggregation row",
		Args:  cobra.ExactArgs(1),
		RunE:  runSummary,
	}

	viewCmd := &cobra.Command{
		Use:   "view [input.xlsx]",
		Short: "Explore the grid interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	rootCmd.AddCommand(layoutCmd, summaryCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging configures the default slog logger.
func setupLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(handler))
}

func parseAggregation(s string) (layout.AggregationMode, error) {
	switch s {
	case "count":
		return layout.AggregationCount, nil
	case "sum":
		return layout.AggregationSum, nil
	case "avg":
		return layout.AggregationAvg, nil
	case "off", "none":
		return layout.AggregationOff, nil
	}
	return "", fmt.Errorf("invalid aggregation: %s (must be count, sum, avg, or off)", s)
}

func parseDensity(s string) (layout.ExtentDensity, error) {
	switch s {
	case "dense":
		return layout.DensityDense, nil
	case "sparse":
		return layout.DensitySparse, nil
	case "ultra-sparse":
		return layout.DensityUltraSparse, nil
	}
	return "", fmt.Errorf("invalid density: %s (must be dense, sparse, or ultra-sparse)", s)
}

// buildEngine loads records from the workbook and lays out the grid.
func buildEngine(inputPath string, cfg models.GridConfig, extra ...facetgrid.Option) (*facetgrid.Engine, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	mode, err := parseAggregation(aggregation)
	if err != nil {
		return nil, err
	}
	dens, err := parseDensity(density)
	if err != nil {
		return nil, err
	}

	opts := []facetgrid.Option{
		facetgrid.WithGridConfig(cfg),
		facetgrid.WithAggregation(mode),
		facetgrid.WithExtentDensity(dens),
		facetgrid.WithAxisConfiguration(models.AxisConfiguration{
			X: models.AxisMapping{Kind: models.KindCategory, Facet: xFacet},
			Y: models.AxisMapping{Kind: models.KindCategory, Facet: yFacet},
		}),
	}
	engine := facetgrid.New(append(opts, extra...)...)

	src := store.WorkbookSource{Path: inputPath, Sheet: sheet}
	if err := engine.LoadFrom(src); err != nil {
		return nil, err
	}
	return engine, nil
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadGridConfig(configPath)
	if err != nil {
		return err
	}
	engine, err := buildEngine(args[0], cfg)
	if err != nil {
		return err
	}

	jsonData, err := output.ToJSON(engine.View(), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadGridConfig(configPath)
	if err != nil {
		return err
	}
	engine, err := buildEngine(args[0], cfg)
	if err != nil {
		return err
	}

	columns := engine.ColumnHeaders()
	labels := make(map[int]string)
	for _, h := range columns {
		if h.IsLeaf {
			labels[h.StartIndex] = h.ID
		}
	}
	for _, s := range engine.SummaryRow() {
		label := labels[s.GridX]
		if s.XValue == "total" {
			label = "Total"
		}
		value := 0.0
		if s.Aggregate != nil {
			value = *s.Aggregate
		}
		fmt.Printf("%-24s %10.2f\n", label, value)
	}
	return nil
}
