package favorites_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/application/favorites"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAPI struct {
	fail     bool
	lastSent []string
	calls    int
}

func (f *fakeAPI) ReplaceFavorites(_ context.Context, names []string) error {
	f.calls++
	if f.fail {
		return errors.New("502 bad gateway")
	}
	f.lastSent = names
	return nil
}

type fakeCache struct {
	saved []string
}

func (f *fakeCache) SaveFavorites(names []string) error { f.saved = names; return nil }
func (f *fakeCache) LoadFavorites() ([]string, error)   { return f.saved, nil }

func newUC(t *testing.T, api favorites.API, cache favorites.Cache) *favorites.UseCase {
	t.Helper()
	uc, err := favorites.NewUseCase(api, cache)
	require.NoError(t, err)
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Toggle
// ──────────────────────────────────────────────────────────────────────────────

func TestToggle_MarcaYConfirma(t *testing.T) {
	api := &fakeAPI{}
	cache := &fakeCache{}
	uc := newUC(t, api, cache)

	res, err := uc.Toggle(context.Background(), "tortilla")
	require.NoError(t, err)
	assert.Equal(t, favorites.StatusCommitted, res.Status)
	assert.True(t, res.Favorite)
	assert.Equal(t, []string{"tortilla"}, api.lastSent, "reemplazo completo de la lista")
	assert.Equal(t, []string{"tortilla"}, cache.saved)
}

func TestToggle_DesmarcaUnFavoritoExistente(t *testing.T) {
	api := &fakeAPI{}
	uc := newUC(t, api, &fakeCache{saved: []string{"tortilla", "paella"}})

	res, err := uc.Toggle(context.Background(), "tortilla")
	require.NoError(t, err)
	assert.False(t, res.Favorite)
	assert.Equal(t, []string{"paella"}, uc.Names())
}

func TestToggle_FalloRemotoRevierteElEstadoLocal(t *testing.T) {
	api := &fakeAPI{fail: true}
	cache := &fakeCache{saved: []string{"paella"}}
	uc := newUC(t, api, cache)

	res, err := uc.Toggle(context.Background(), "tortilla")
	require.Error(t, err, "el fallo remoto se propaga al caller")
	assert.Equal(t, favorites.StatusRolledBack, res.Status)
	assert.False(t, res.Favorite, "vuelve al estado previo al toggle")
	assert.Equal(t, []string{"paella"}, uc.Names(), "mutación inversa aplicada")
	assert.Equal(t, []string{"paella"}, cache.saved, "la caché también se restaura")
}

func TestToggle_IdentificadorVacioRechazaSincrono(t *testing.T) {
	api := &fakeAPI{}
	uc := newUC(t, api, &fakeCache{})

	_, err := uc.Toggle(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, api.calls, "no se llega a llamar al backend")
}
