package models

import "fmt"

// Category classifies an expense. Values are stable string identities
// used both on the wire and in storage.
type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryHome          Category = "HOME"
	CategoryClothes       Category = "CLOTHES"
	CategoryPets          Category = "PETS"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryTransport     Category = "TRANSPORT"
	CategoryEducation     Category = "EDUCATION"
	CategoryMunicipal     Category = "MUNICIPAL"
	CategoryGifts         Category = "GIFTS"
	CategoryLoans         Category = "LOANS"
	CategoryHealth        Category = "HEALTH"
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryHome,
		CategoryClothes,
		CategoryPets,
		CategoryEntertainment,
		CategoryTransport,
		CategoryEducation,
		CategoryMunicipal,
		CategoryGifts,
		CategoryLoans,
		CategoryHealth,
	}
}

func ParseCategory(raw string) (Category, error) {
	candidate := Category(raw)
	for _, category := range Categories() {
		if category == candidate {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}
