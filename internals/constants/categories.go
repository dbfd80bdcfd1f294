package constants

// Quote categories (stored values)
const (
	CategoryFocus      = "focus"
	CategoryMotivation = "motivation"
	CategoryExam       = "exam"
	CategorySlump      = "slump"
	CategoryRoutine    = "routine"
	CategoryGrowth     = "growth"
)

// CategoryAll is a query-time wildcard, never stored on a quote.
const CategoryAll = "all"

// ==========================
// ✅ Grouped Category Slices
// ==========================
var AllCategories = []string{
	CategoryFocus,
	CategoryMotivation,
	CategoryExam,
	CategorySlump,
	CategoryRoutine,
	CategoryGrowth,
}

func IsValidCategory(category string) bool {
	for _, c := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}
