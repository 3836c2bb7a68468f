// Package export produces the tabular report exports: the full item
// collection and the category aggregate, both as CSV. Exports are lossless
// projections of the collections at export time.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/siriwat/lostfound/internal/model"
	"github.com/siriwat/lostfound/internal/report"
)

// itemColumns is the fixed column set of the item export.
var itemColumns = []string{
	"id", "title", "category", "status",
	"locationFound", "dateFound", "storageLocation", "reporter",
	"shelfCode", "dateStored", "claimer", "dateClaimed",
	"finderName", "dateHandover",
}

// ItemsCSV renders one row per item in collection order.
func ItemsCSV(items []model.Item) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(itemColumns); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for _, it := range items {
		row := []string{
			it.ID, it.Title, it.Category, it.Status,
			it.LocationFound, it.DateFound, it.StorageLocation, it.Reporter,
			it.ShelfCode, it.DateStored, it.Claimer, it.DateClaimed,
			it.FinderName, it.DateHandover,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing item row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// CategoriesCSV renders the category aggregate.
func CategoriesCSV(cats []report.CategoryCount) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"category", "count"}); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for _, c := range cats {
		if err := w.Write([]string{c.Name, strconv.Itoa(c.Count)}); err != nil {
			return nil, fmt.Errorf("writing category row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}
