// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package recommend

// BudgetLevel is the ordinal encoding of a destination's budget label.
type BudgetLevel int

const (
	// BudgetLevelBudget is the "Budget" label.
	BudgetLevelBudget BudgetLevel = 1
	// BudgetLevelMidRange is the "Mid-range" label.
	BudgetLevelMidRange BudgetLevel = 2
	// BudgetLevelLuxury is the "Luxury" label.
	BudgetLevelLuxury BudgetLevel = 3
)

var budgetLabels = map[string]BudgetLevel{
	"Budget":    BudgetLevelBudget,
	"Mid-range": BudgetLevelMidRange,
	"Luxury":    BudgetLevelLuxury,
}

// ParseBudgetLabel maps a budget label to its ordinal. Matching is exact.
func ParseBudgetLabel(label string) (BudgetLevel, error) {
	level, ok := budgetLabels[label]
	if !ok {
		return 0, &ValidationError{Field: "budget_level", Value: label, Err: ErrUnknownBudgetLabel}
	}
	return level, nil
}

// String returns the catalog label for the level.
func (b BudgetLevel) String() string {
	switch b {
	case BudgetLevelBudget:
		return "Budget"
	case BudgetLevelMidRange:
		return "Mid-range"
	case BudgetLevelLuxury:
		return "Luxury"
	default:
		return "unknown"
	}
}

