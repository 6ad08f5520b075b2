package flux

import "github.com/idilsaglam/shoplist/internal/model"

// Transition computes the next list from the current one and an action.
// It is pure: arguments are never mutated, add copies into a fresh slice
// and load clones its payload, so older snapshots stay valid. Unrecognized
// kinds (including the zero Action) return state as-is.
func Transition(state []model.Item, a Action) []model.Item {
	switch a.Kind {
	case KindLoadItems:
		next := make([]model.Item, len(a.Items))
		copy(next, a.Items)
		return next

	case KindAddItem:
		next := make([]model.Item, len(state)+1)
		copy(next, state)
		next[len(state)] = a.Item
		return next

	default:
		return state
	}
}
