package entities

type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryRetail     Category = "retail"
	CategoryService    Category = "service"
	CategoryTech       Category = "tech"
)

// FallbackCategory is returned when no keyword set matches.
const FallbackCategory = CategoryService

// ClassificationOrder is the order keyword sets are tested in. First hit wins,
// so "online tech shop" is retail, not tech.
var ClassificationOrder = []Category{CategoryRestaurant, CategoryRetail, CategoryTech}

// AllCategories lists every valid category.
var AllCategories = []Category{CategoryRestaurant, CategoryRetail, CategoryService, CategoryTech}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}
