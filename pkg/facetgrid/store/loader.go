// Package store is the record-store boundary: it loads read-only records
// and shapes the query-style requests the engine hands back (ordering,
// predicate, grouping expressions). Query execution itself belongs to the
// data store, not the engine.
package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/models"
)

// Source provides a read-only sequence of records.
type Source interface {
	Records() ([]models.Record, error)
}

// Reserved column names mapped to Record core fields. Any other column
// becomes a facet.
const (
	columnID    = "id"
	columnTitle = "title"
	columnValue = "value"
)

// WorkbookSource reads records from a worksheet of an xlsx workbook.
// The first row names the facets; each following row becomes one record.
type WorkbookSource struct {
	Path string
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string
}

// Records loads and normalizes the worksheet rows.
func (s WorkbookSource) Records() ([]models.Record, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", s.Path)
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return RecordsFromRows(rows), nil
}

// RecordsFromRows converts a header row plus data rows into normalized
// records. The id/title/value columns feed the core fields; everything
// else goes into the Facets extension map. Rows without an id are
// assigned one. Normalization happens here, never inside the engine.
func RecordsFromRows(rows [][]string) []models.Record {
	if len(rows) < 2 {
		return nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.ToLower(h))
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		r := models.Record{Facets: make(map[string]string)}
		for i, raw := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			value := strings.TrimSpace(raw)
			if value == "" {
				continue
			}
			switch header[i] {
			case columnID:
				r.ID = value
			case columnTitle:
				r.Title = value
			case columnValue:
				if v, err := strconv.ParseFloat(value, 64); err == nil {
					r.Value = v
				}
			default:
				r.Facets[header[i]] = value
			}
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		records = append(records, r)
	}
	return records
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// SliceSource wraps an in-memory record slice as a Source.
type SliceSource []models.Record

// Records returns the wrapped slice.
func (s SliceSource) Records() ([]models.Record, error) { return s, nil }
