package shopping_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/application/shopping"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/catalog"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y helpers
// ──────────────────────────────────────────────────────────────────────────────

// memPersister guarda la lista en memoria y cuenta los guardados.
type memPersister struct {
	saved    []entity.ShoppingItem
	saves    int
	failSave error
	failLoad error
}

func (m *memPersister) SaveList(items []entity.ShoppingItem) error {
	m.saves++
	if m.failSave != nil {
		return m.failSave
	}
	m.saved = items
	return nil
}

func (m *memPersister) LoadList() ([]entity.ShoppingItem, error) {
	if m.failLoad != nil {
		return nil, m.failLoad
	}
	return m.saved, nil
}

// fakeClock devuelve instantes crecientes de segundo en segundo.
func fakeClock() func() time.Time {
	t := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newStore(t *testing.T, p shopping.Persister) *shopping.Store {
	t.Helper()
	s, err := shopping.NewStore(p, catalog.NewNamer("es"), fakeClock())
	require.NoError(t, err)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_MismoNombreSumaCantidades(t *testing.T) {
	s := newStore(t, &memPersister{})

	require.NoError(t, s.Add("leche", 2))
	require.NoError(t, s.Add("leche", 3))

	items := s.Items()
	require.Len(t, items, 1, "a lo sumo una entrada por nombre")
	assert.Equal(t, 5, items[0].Quantity)
	assert.False(t, items[0].InCart)
}

func TestAdd_CantidadInvalidaSeCorrigeAUno(t *testing.T) {
	s := newStore(t, &memPersister{})

	require.NoError(t, s.Add("pan", 0))
	require.NoError(t, s.Add("huevos", -7))

	items := s.Items()
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAdd_NombreVacioRechazaSincrono(t *testing.T) {
	s := newStore(t, &memPersister{})
	assert.ErrorIs(t, s.Add("  ", 1), domain.ErrInvalidInput)
	assert.Equal(t, 0, s.Len())
}

func TestAdd_PersisteTrasCadaMutacion(t *testing.T) {
	p := &memPersister{}
	s := newStore(t, p)

	require.NoError(t, s.Add("leche", 1))
	require.NoError(t, s.Add("pan", 1))
	require.NoError(t, s.SetQuantity(0, 4))

	assert.Equal(t, 3, p.saves, "cada mutación guarda la lista completa")
	require.Len(t, p.saved, 2)
	assert.Equal(t, 4, p.saved[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestSetInCart_SellaYLimpiaCartTime(t *testing.T) {
	s := newStore(t, &memPersister{})
	require.NoError(t, s.Add("leche", 1))

	require.NoError(t, s.SetInCart(0, true))
	items := s.Items()
	require.NotNil(t, items[0].CartTime, "entrar al carrito sella CartTime")

	require.NoError(t, s.SetInCart(0, false))
	items = s.Items()
	assert.Nil(t, items[0].CartTime, "salir del carrito limpia CartTime")
}

func TestDisplayOrder_CarritoAlFinalPorHoraDeEntrada(t *testing.T) {
	s := newStore(t, &memPersister{})
	require.NoError(t, s.Add("zanahoria", 1))
	require.NoError(t, s.Add("arroz", 1))
	require.NoError(t, s.Add("leche", 1))
	require.NoError(t, s.Add("banana", 1))

	// leche entra primero al carrito, después zanahoria
	require.NoError(t, s.SetInCart(2, true))
	require.NoError(t, s.SetInCart(0, true))

	orden := s.DisplayOrder()
	nombres := make([]string, len(orden))
	for i, o := range orden {
		nombres[i] = o.Item.Name
	}
	// fuera del carrito por nombre, dentro por hora de entrada
	assert.Equal(t, []string{"arroz", "banana", "leche", "zanahoria"}, nombres)
	assert.False(t, orden[0].Item.InCart)
	assert.True(t, orden[2].Item.InCart)
}

func TestDisplayOrder_DeterministaConEntradasIguales(t *testing.T) {
	s := newStore(t, &memPersister{})
	require.NoError(t, s.Add("leche", 1))
	require.NoError(t, s.Add("pan", 1))

	a := s.DisplayOrder()
	b := s.DisplayOrder()
	assert.Equal(t, a, b, "mismas entradas, mismo orden en llamadas repetidas")
}

func TestDisplayOrder_IndicesApuntanAlStore(t *testing.T) {
	s := newStore(t, &memPersister{})
	require.NoError(t, s.Add("zanahoria", 1))
	require.NoError(t, s.Add("arroz", 1))

	orden := s.DisplayOrder()
	// "arroz" se muestra primero pero su índice real es 1
	assert.Equal(t, "arroz", orden[0].Item.Name)
	assert.Equal(t, 1, orden[0].Index)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestSetQuantity_SueloEnUno(t *testing.T) {
	s := newStore(t, &memPersister{})
	require.NoError(t, s.Add("leche", 5))

	require.NoError(t, s.SetQuantity(0, 0))
	assert.Equal(t, 1, s.Items()[0].Quantity)

	require.NoError(t, s.SetQuantity(0, 12))
	assert.Equal(t, 12, s.Items()[0].Quantity, "sin techo")
}

func TestSetQuantity_IndiceFueraDeRango(t *testing.T) {
	s := newStore(t, &memPersister{})
	assert.ErrorIs(t, s.SetQuantity(0, 2), domain.ErrNotFound)
	assert.ErrorIs(t, s.SetInCart(3, true), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado en dos fases
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_RequiereConfirmacion(t *testing.T) {
	s := newStore(t, &memPersister{})
	require.NoError(t, s.Add("leche", 1))

	require.NoError(t, s.RequestRemove(0))
	assert.Equal(t, 1, s.Len(), "solo solicitar no borra la entrada")
	assert.Equal(t, 0, s.PendingRemove())

	require.NoError(t, s.ConfirmRemove())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.PendingRemove())
}

func TestRemove_ConfirmarSinSolicitudFalla(t *testing.T) {
	s := newStore(t, &memPersister{})
	require.NoError(t, s.Add("leche", 1))

	assert.ErrorIs(t, s.ConfirmRemove(), domain.ErrNoPendingOp)
	assert.Equal(t, 1, s.Len())
}

func TestRemove_CancelarDescartaLaMarca(t *testing.T) {
	s := newStore(t, &memPersister{})
	require.NoError(t, s.Add("leche", 1))

	require.NoError(t, s.RequestRemove(0))
	s.CancelRemove()
	assert.ErrorIs(t, s.ConfirmRemove(), domain.ErrNoPendingOp)
	assert.Equal(t, 1, s.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia best-effort e hidratación
// ──────────────────────────────────────────────────────────────────────────────

func TestPersistencia_FalloNoRevierteLaMutacion(t *testing.T) {
	p := &memPersister{failSave: errors.New("cuota llena")}
	s := newStore(t, p)

	var reportado error
	s.OnPersistError(func(err error) { reportado = err })

	require.NoError(t, s.Add("leche", 2))
	assert.Equal(t, 1, s.Len(), "la memoria sigue siendo autoritativa")
	assert.Error(t, reportado, "el fallo se reporta al callback")
}

func TestHidratacion_RestauraInvariantes(t *testing.T) {
	p := &memPersister{saved: []entity.ShoppingItem{
		{Name: "leche", Quantity: 0},             // cantidad inválida
		{Name: "", Quantity: 3},                  // sin nombre: se descarta
		{Name: "pan", Quantity: 2, InCart: true}, // en carrito sin CartTime
	}}
	s := newStore(t, p)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	require.True(t, items[1].InCart)
	assert.NotNil(t, items[1].CartTime, "InCart implica CartTime tras hidratar")
}

func TestHidratacion_FalloDeLecturaDejaStoreVacioUsable(t *testing.T) {
	p := &memPersister{failLoad: errors.New("almacén corrupto")}
	s, err := shopping.NewStore(p, catalog.NewNamer("es"), fakeClock())
	assert.Error(t, err)
	require.NotNil(t, s)
	assert.NoError(t, s.Add("leche", 1))
}
