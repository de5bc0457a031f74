package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// loadGridConfig returns the default geometry, overlaid with a YAML
// config file when one is given.
func loadGridConfig(path string) (models.GridConfig, error) {
	cfg := models.DefaultGridConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// tuiGridConfig is the character-scale geometry used by the view
// subcommand: one engine pixel maps to one terminal cell.
func tuiGridConfig() models.GridConfig {
	return models.GridConfig{
		CellWidth:        14,
		CellHeight:       2,
		ColumnBandHeight: 3,
		RowBandWidth:     16,
		LevelDepth:       1,
		LabelHeight:      1,
		ResizeEdgeWidth:  1,
		FilterIconSize:   1,
		MinSize:          4,
		AutoFitPadding:   2,
		SummaryRowHeight: 1,
		GrandTotalWidth:  8,
	}
}
