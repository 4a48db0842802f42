package models

// Expense categories offered at entry time. Stored categories are free
// strings; this list only constrains new input.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryHousing       = "Housing"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryShopping      = "Shopping"
	CategoryEMI           = "EMI"
	CategoryOther         = "Other"
)

// ExpenseCategories lists the accepted expense categories in display order.
var ExpenseCategories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealth,
	CategoryShopping,
	CategoryEMI,
	CategoryOther,
}

// IsExpenseCategory reports whether name is one of ExpenseCategories.
func IsExpenseCategory(name string) bool {
	for _, c := range ExpenseCategories {
		if c == name {
			return true
		}
	}
	return false
}
