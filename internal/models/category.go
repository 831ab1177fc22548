package models

import "strings"

// Expense categories the extraction prompt offers the vision model
const (
	CategoryFuel           = "Fuel"
	CategoryMeals          = "Meals"
	CategorySupplies       = "Supplies"
	CategoryTravel         = "Travel"
	CategorySoftware       = "Software"
	CategoryOffice         = "Office"
	CategoryUtilities      = "Utilities"
	CategoryMarketing      = "Marketing"
	CategoryEntertainment  = "Entertainment"
	CategoryTransportation = "Transportation"
	CategoryOther          = "Other"
)

// AllCategories returns all valid category constants in prompt order
func AllCategories() []string {
	return []string{
		CategoryFuel,
		CategoryMeals,
		CategorySupplies,
		CategoryTravel,
		CategorySoftware,
		CategoryOffice,
		CategoryUtilities,
		CategoryMarketing,
		CategoryEntertainment,
		CategoryTransportation,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// NormalizeCategory maps a case-insensitive match onto the canonical spelling.
// The second result is false when nothing matches.
func NormalizeCategory(category string) (string, bool) {
	trimmed := strings.TrimSpace(category)
	for _, validCategory := range AllCategories() {
		if strings.EqualFold(trimmed, validCategory) {
			return validCategory, true
		}
	}
	return "", false
}
