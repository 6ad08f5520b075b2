package flux

import "github.com/idilsaglam/shoplist/internal/model"

// Kind tags an Action with the transition it requests.
type Kind string

const (
	KindLoadItems Kind = "load_items"
	KindAddItem   Kind = "add_item"
)

// Action describes an intended change to the list. Payload fields are typed
// per kind: Items carries the load_items replacement, Item the add_item
// entry. Unused fields stay zero, so Transition never needs a type switch.
type Action struct {
	Kind  Kind
	Item  model.Item
	Items []model.Item
}

// LoadItems builds the action that replaces the whole list.
func LoadItems(items []model.Item) Action {
	return Action{Kind: KindLoadItems, Items: items}
}

// AddItem builds the action that appends one entry. The description is
// wrapped into a full Item here, so the reducer only ever sees Items.
func AddItem(description string) Action {
	return Action{Kind: KindAddItem, Item: model.Item{Description: description}}
}
