package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/shoplist/internal/model"
)

func TestAddItemWrapsDescription(t *testing.T) {
	a := AddItem("milk")

	assert.Equal(t, KindAddItem, a.Kind)
	assert.Equal(t, model.Item{Description: "milk"}, a.Item)
	assert.Empty(t, a.Items)
}

func TestLoadItemsCarriesReplacement(t *testing.T) {
	items := []model.Item{{ID: 1, Description: "milk"}}
	a := LoadItems(items)

	assert.Equal(t, KindLoadItems, a.Kind)
	assert.Equal(t, items, a.Items)
}

func TestCreatorsAreReferentiallyTransparent(t *testing.T) {
	assert.Equal(t, AddItem("milk"), AddItem("milk"))
	assert.Equal(t, LoadItems(Seed()), LoadItems(Seed()))
}
