// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package storage

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/wanderlust/internal/recommend"
)

//go:embed data/cities.csv
var defaultCatalogCSV []byte

// Column names expected in the catalog header.
const (
	ColumnCity             = "city"
	ColumnCountry          = "country"
	ColumnShortDescription = "short_description"
	ColumnBudgetLevel      = "budget_level"
)

// attributeColumns maps CSV columns to attribute fields in vector order.
var attributeColumns = []struct {
	name string
	set  func(a *recommend.Attributes, v float64)
}{
	{"culture", func(a *recommend.Attributes, v float64) { a.Culture = v }},
	{"adventure", func(a *recommend.Attributes, v float64) { a.Adventure = v }},
	{"nature", func(a *recommend.Attributes, v float64) { a.Nature = v }},
	{"beaches", func(a *recommend.Attributes, v float64) { a.Beaches = v }},
	{"nightlife", func(a *recommend.Attributes, v float64) { a.Nightlife = v }},
	{"cuisine", func(a *recommend.Attributes, v float64) { a.Cuisine = v }},
	{"wellness", func(a *recommend.Attributes, v float64) { a.Wellness = v }},
	{"urban", func(a *recommend.Attributes, v float64) { a.Urban = v }},
	{"seclusion", func(a *recommend.Attributes, v float64) { a.Seclusion = v }},
}

// ErrMissingColumn indicates a required column is absent from the header.
var ErrMissingColumn = errors.New("missing catalog column")

// ReadCatalogRows parses CSV catalog rows from r.
func ReadCatalogRows(r io.Reader) ([]recommend.CatalogRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog is empty: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	required := []string{ColumnCity, ColumnCountry, ColumnShortDescription, ColumnBudgetLevel}
	for _, ac := range attributeColumns {
		required = append(required, ac.name)
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var rows []recommend.CatalogRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog line %d: %w", line, err)
		}

		row := recommend.CatalogRow{
			City:             strings.TrimSpace(record[cols[ColumnCity]]),
			Country:          strings.TrimSpace(record[cols[ColumnCountry]]),
			ShortDescription: strings.TrimSpace(record[cols[ColumnShortDescription]]),
			BudgetLabel:      strings.TrimSpace(record[cols[ColumnBudgetLevel]]),
		}
		for _, ac := range attributeColumns {
			raw := strings.TrimSpace(record[cols[ac.name]])
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("catalog line %d: column %s: %w", line, ac.name, err)
			}
			ac.set(&row.Attributes, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadCatalog builds a catalog from the CSV file at path, or from the
// embedded default dataset when path is empty.
func LoadCatalog(path string) (*recommend.Catalog, error) {
	var src io.Reader
	if path == "" {
		src = bytes.NewReader(defaultCatalogCSV)
	} else {
		f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		src = f
	}

	rows, err := ReadCatalogRows(src)
	if err != nil {
		return nil, err
	}
	return recommend.LoadCatalog(rows)
}
