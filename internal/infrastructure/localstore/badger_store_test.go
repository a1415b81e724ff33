package localstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/infrastructure/localstore"
)

func openStore(t *testing.T) *localstore.BadgerStore {
	t.Helper()
	s, err := localstore.Open("") // en memoria
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestListaIdaYVuelta(t *testing.T) {
	s := openStore(t)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []entity.ShoppingItem{
		{Name: "leche", Quantity: 2},
		{Name: "pan", Quantity: 1, InCart: true, CartTime: &now},
	}
	require.NoError(t, s.SaveList(in))

	out, err := s.LoadList()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "leche", out[0].Name)
	require.NotNil(t, out[1].CartTime)
	assert.True(t, out[1].CartTime.Equal(now))
}

func TestClaveAusenteEsEstadoVacio(t *testing.T) {
	s := openStore(t)

	list, err := s.LoadList()
	require.NoError(t, err)
	assert.Empty(t, list)

	favs, err := s.LoadFavorites()
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestFavoritosIdaYVuelta(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.SaveFavorites([]string{"tortilla", "paella"}))

	favs, err := s.LoadFavorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"tortilla", "paella"}, favs)
}

func TestGuardarSobrescribeLaClaveFija(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.SaveList([]entity.ShoppingItem{{Name: "leche", Quantity: 1}}))
	require.NoError(t, s.SaveList([]entity.ShoppingItem{{Name: "pan", Quantity: 3}}))

	out, err := s.LoadList()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pan", out[0].Name)
}
