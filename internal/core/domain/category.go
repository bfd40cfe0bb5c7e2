package domain

import (
	"fmt"

	"github.com/SscSPs/finsight/internal/apperrors"
)

// Category is a closed-set label carried by every transaction and budget.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryBills         Category = "Bills"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategorySalary        Category = "Salary"
	CategoryFreelance     Category = "Freelance"
	CategoryInvestment    Category = "Investment"
	CategoryDebt          Category = "Debt"
	CategoryOther         Category = "Other"
)

var allCategories = []Category{
	CategoryFood,
	CategoryTravel,
	CategoryBills,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealth,
	CategoryEducation,
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryDebt,
	CategoryOther,
}

// budgetable lists the categories a budget may be set for.
var budgetable = map[Category]bool{
	CategoryFood:          true,
	CategoryTravel:        true,
	CategoryBills:         true,
	CategoryShopping:      true,
	CategoryEntertainment: true,
	CategoryHealth:        true,
	CategoryEducation:     true,
	CategoryOther:         true,
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IsBudgetable reports whether a budget can be created for c.
func (c Category) IsBudgetable() bool {
	return budgetable[c]
}

// ParseCategory converts s into a Category, rejecting unknown labels.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", apperrors.NewValidationError(apperrors.FieldError{
			Field:   "category",
			Message: fmt.Sprintf("unknown category %q", s),
		})
	}
	return c, nil
}
