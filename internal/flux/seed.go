package flux

import "github.com/idilsaglam/shoplist/internal/model"

// Seed returns the fixed startup list. IDs are attached here and nowhere
// else. Callers bootstrap a fresh store with Dispatch(LoadItems(Seed())).
func Seed() []model.Item {
	return []model.Item{
		{ID: 1, Description: "milk"},
		{ID: 2, Description: "cookies"},
		{ID: 3, Description: "sprinkles"},
	}
}
