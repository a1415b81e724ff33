package view_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/application/shopping"
	"github.com/jhoicas/despensa-api/internal/application/view"
	"github.com/jhoicas/despensa-api/internal/domain/catalog"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/stock"
)

type nopPersister struct{}

func (nopPersister) SaveList([]entity.ShoppingItem) error     { return nil }
func (nopPersister) LoadList() ([]entity.ShoppingItem, error) { return nil, nil }

func producto(name, category, storage string, qty int64) entity.Product {
	return entity.Product{
		Name:     name,
		Category: category,
		Storage:  storage,
		Quantity: decimal.NewFromInt(qty),
	}
}

func TestProductTable_FiltraPorCategoriaAlmacenYBusqueda(t *testing.T) {
	namer := catalog.NewNamer("es")
	productos := []entity.Product{
		producto("leche", "lácteos", "nevera", 2),
		producto("yogur", "lácteos", "nevera", 1),
		producto("arroz", "despensa", "armario", 3),
	}

	rows := view.ProductTable(productos, view.Filters{Category: "lácteos"}, namer)
	require.Len(t, rows, 2)

	rows = view.ProductTable(productos, view.Filters{Search: "ARR"}, namer)
	require.Len(t, rows, 1)
	assert.Equal(t, "arroz", rows[0].Name)

	rows = view.ProductTable(productos, view.Filters{Storage: "armario"}, namer)
	require.Len(t, rows, 1)
}

func TestProductTable_BusquedaPorAlias(t *testing.T) {
	namer := catalog.NewNamer("es")
	namer.SetDomain(&entity.DomainData{Products: []entity.DomainProduct{
		{Name: "milk", Aliases: []string{"leche entera"}},
	}})

	rows := view.ProductTable([]entity.Product{producto("milk", "", "", 1)}, view.Filters{Search: "entera"}, namer)
	require.Len(t, rows, 1)
	assert.Equal(t, "leche entera", rows[0].DisplayName)
}

func TestProductTable_OrdenPorUrgenciaDeStock(t *testing.T) {
	namer := catalog.NewNamer("es")
	th := decimal.NewFromInt(2)
	productos := []entity.Product{
		producto("arroz", "", "", 9),
		{Name: "leche", Quantity: decimal.NewFromInt(1), Threshold: &th}, // low
		producto("pan", "", "", 0),                                      // none
	}

	rows := view.ProductTable(productos, view.Filters{Sort: "stock"}, namer)
	require.Len(t, rows, 3)
	assert.Equal(t, stock.LevelNone, rows[0].Stock)
	assert.Equal(t, stock.LevelLow, rows[1].Stock)
	assert.Equal(t, stock.LevelOK, rows[2].Stock)
}

func TestShoppingRows_MarcaLaFilaPendienteDeBorrado(t *testing.T) {
	namer := catalog.NewNamer("es")
	store, err := shopping.NewStore(nopPersister{}, namer, time.Now)
	require.NoError(t, err)
	require.NoError(t, store.Add("zanahoria", 1))
	require.NoError(t, store.Add("arroz", 2))
	require.NoError(t, store.RequestRemove(1))

	rows := view.ShoppingRows(store.DisplayOrder(), store.PendingRemove(), namer)
	require.Len(t, rows, 2)
	// "arroz" primero en pantalla, y es el índice 1 del store, pendiente de borrar
	assert.Equal(t, "arroz", rows[0].Name)
	assert.True(t, rows[0].PendingRemove)
	assert.False(t, rows[1].PendingRemove)
}
