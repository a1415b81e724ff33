package favorites

import (
	"context"
	"strings"

	"github.com/jhoicas/despensa-api/internal/domain"
)

// API es el contrato remoto de favoritos: PUT /api/favorites con la lista
// completa de nombres de receta (reemplazo total, no delta).
type API interface {
	ReplaceFavorites(ctx context.Context, names []string) error
}

// Cache persiste la lista local de favoritos bajo la clave fija del almacén;
// es una caché best-effort, la fuente de verdad es el backend.
type Cache interface {
	SaveFavorites(names []string) error
	LoadFavorites() ([]string, error)
}

// Status es el estado final de un toggle de favorito. La operación pasa por
// Pending (mutación local aplicada, confirmación remota en vuelo) y termina
// en Committed o, si el backend falla, en RolledBack tras aplicar la
// mutación inversa.
type Status string

const (
	StatusPending    Status = "pending"
	StatusCommitted  Status = "committed"
	StatusRolledBack Status = "rolled_back"
)

// Result describe el desenlace de un toggle.
type Result struct {
	Name     string `json:"name"`
	Favorite bool   `json:"favorite"` // estado local tras la operación
	Status   Status `json:"status"`
}

// UseCase gestiona los favoritos de recetas con actualización optimista:
// se aplica el cambio local primero, se confirma contra el backend y, si la
// confirmación falla, se aplica la mutación inversa (único componente con
// semántica de acción compensatoria en la aplicación).
type UseCase struct {
	api   API
	cache Cache
	names []string // orden de marcado; sin duplicados
}

// NewUseCase construye el caso de uso hidratando la caché local. Un fallo de
// lectura deja la lista vacía y se devuelve para que el caller lo registre.
func NewUseCase(api API, cache Cache) (*UseCase, error) {
	uc := &UseCase{api: api, cache: cache}
	names, err := cache.LoadFavorites()
	if err != nil {
		return uc, err
	}
	uc.names = names
	return uc, nil
}

// Names devuelve una copia de la lista local de favoritos.
func (uc *UseCase) Names() []string {
	out := make([]string, len(uc.names))
	copy(out, uc.names)
	return out
}

// IsFavorite indica si la receta está marcada localmente.
func (uc *UseCase) IsFavorite(name string) bool {
	for _, n := range uc.names {
		if n == name {
			return true
		}
	}
	return false
}

// Toggle alterna el favorito. Un identificador vacío rechaza síncrono con
// ErrInvalidInput (el caller lo maneja; no se genera toast). El error del
// backend se devuelve junto con Status RolledBack: el estado local ya quedó
// restaurado al previo.
func (uc *UseCase) Toggle(ctx context.Context, name string) (Result, error) {
	if strings.TrimSpace(name) == "" {
		return Result{}, domain.ErrInvalidInput
	}

	previous := uc.Names()
	wasFavorite := uc.IsFavorite(name)

	// Mutación optimista local (estado Pending)
	if wasFavorite {
		uc.names = remove(uc.names, name)
	} else {
		uc.names = append(uc.names, name)
	}
	_ = uc.cache.SaveFavorites(uc.Names()) // best-effort

	// Confirmación remota: reemplazo completo de la lista
	if err := uc.api.ReplaceFavorites(ctx, uc.Names()); err != nil {
		// Compensación: restaurar el estado previo
		uc.names = previous
		_ = uc.cache.SaveFavorites(previous)
		return Result{Name: name, Favorite: wasFavorite, Status: StatusRolledBack}, err
	}

	return Result{Name: name, Favorite: !wasFavorite, Status: StatusCommitted}, nil
}

func remove(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
