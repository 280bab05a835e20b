// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

import (
	"fmt"
	"math"
)

// Catalog is an ordered, immutable set of destinations together with their
// feature matrix. Row i of the matrix belongs to item i.
type Catalog struct {
	items  []Item
	matrix [][]float64
	index  map[string]int
}

// LoadCatalog builds a catalog from rows, preserving their order. The first
// row with an unknown budget label, a non-finite attribute or a city name
// already seen fails the whole load.
func LoadCatalog(rows []CatalogRow) (*Catalog, error) {
	c := &Catalog{
		items:  make([]Item, 0, len(rows)),
		matrix: make([][]float64, 0, len(rows)),
		index:  make(map[string]int, len(rows)),
	}

	for i, row := range rows {
		if _, dup := c.index[row.City]; dup {
			return nil, fmt.Errorf("catalog row %d (%s): %w", i, row.City,
				&ValidationError{Field: "city", Value: row.City, Err: ErrDuplicateItem})
		}

		budget, err := ParseBudgetLabel(row.BudgetLabel)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d (%s): %w", i, row.City, err)
		}

		item := Item{
			Name:        row.City,
			Country:     row.Country,
			Description: row.ShortDescription,
			Budget:      budget,
			BudgetLabel: row.BudgetLabel,
			Attributes:  row.Attributes,
		}

		vec := item.Vector()
		for d, v := range vec {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("catalog row %d (%s): %w", i, row.City,
					&ValidationError{Field: DimensionNames[d], Value: v, Err: ErrInvalidAttribute})
			}
		}

		c.items = append(c.items, item)
		c.matrix = append(c.matrix, vec.Slice())
		c.index[item.Name] = i
	}

	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ItemAt returns the item at row i.
func (c *Catalog) ItemAt(i int) (Item, bool) {
	if i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// FindByName returns the item named name.
func (c *Catalog) FindByName(name string) (Item, bool) {
	i, ok := c.index[name]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Contains reports whether an item named name exists.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Vectors returns a deep copy of the feature matrix.
func (c *Catalog) Vectors() [][]float64 {
	out := make([][]float64, len(c.matrix))
	for i, row := range c.matrix {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
