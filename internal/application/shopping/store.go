package shopping

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/catalog"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// Store es el dueño exclusivo de la lista de la compra: una colección ordenada
// de entradas {nombre, cantidad, en carrito, hora de carrito} con a lo sumo una
// entrada por nombre. Cada mutación persiste la lista completa a través del
// Persister (sin batching) antes de que nadie vuelva a proyectarla.
//
// El borrado es en dos fases: RequestRemove marca la fila pendiente y solo
// ConfirmRemove la elimina; la acción de fila nunca borra directamente.
type Store struct {
	items         []entity.ShoppingItem
	pendingRemove int // índice pendiente de confirmación; -1 = ninguno
	persister     Persister
	namer         *catalog.Namer
	now           func() time.Time
	onPersistErr  func(error)
}

// NewStore construye el store hidratando las entradas persistidas. Un fallo de
// lectura no es fatal: se devuelve junto con un store vacío utilizable.
func NewStore(persister Persister, namer *catalog.Namer, now func() time.Time) (*Store, error) {
	s := &Store{
		pendingRemove: -1,
		persister:     persister,
		namer:         namer,
		now:           now,
	}
	items, err := persister.LoadList()
	if err != nil {
		return s, err
	}
	s.items = sanitize(items, now)
	return s, nil
}

// OnPersistError registra el callback para fallos de guardado (se reporta como
// toast; la mutación en memoria ya quedó aplicada).
func (s *Store) OnPersistError(fn func(error)) {
	s.onPersistErr = fn
}

// sanitize restaura los invariantes sobre datos hidratados de versiones
// anteriores o corruptos: cantidad mínima 1, CartTime presente sii InCart.
func sanitize(items []entity.ShoppingItem, now func() time.Time) []entity.ShoppingItem {
	out := make([]entity.ShoppingItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		if !it.InCart {
			it.CartTime = nil
		} else if it.CartTime == nil {
			t := now()
			it.CartTime = &t
		}
		out = append(out, it)
	}
	return out
}

// Items devuelve una copia de las entradas en orden de inserción.
func (s *Store) Items() []entity.ShoppingItem {
	out := make([]entity.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len devuelve el número de entradas.
func (s *Store) Len() int { return len(s.items) }

// PendingRemove devuelve el índice marcado para borrar, o -1.
func (s *Store) PendingRemove() int { return s.pendingRemove }

// Add añade qty unidades del producto. Si ya existe una entrada con ese nombre
// se suman cantidades; si no, se añade al final fuera del carrito. Cantidades
// no positivas se corrigen a 1.
func (s *Store) Add(name string, qty int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	if qty < 1 {
		qty = 1
	}
	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].Quantity += qty
			s.persist()
			return nil
		}
	}
	s.items = append(s.items, entity.ShoppingItem{Name: name, Quantity: qty})
	s.persist()
	return nil
}

// SetInCart marca o desmarca la entrada como metida en el carrito. Al entrar
// al carrito se sella CartTime; al salir se limpia.
func (s *Store) SetInCart(index int, inCart bool) error {
	if index < 0 || index >= len(s.items) {
		return domain.ErrNotFound
	}
	it := &s.items[index]
	if it.InCart == inCart {
		return nil
	}
	it.InCart = inCart
	if inCart {
		t := s.now()
		it.CartTime = &t
	} else {
		it.CartTime = nil
	}
	s.persist()
	return nil
}

// SetQuantity fija la cantidad de la entrada, con suelo en 1.
func (s *Store) SetQuantity(index, qty int) error {
	if index < 0 || index >= len(s.items) {
		return domain.ErrNotFound
	}
	if qty < 1 {
		qty = 1
	}
	s.items[index].Quantity = qty
	s.persist()
	return nil
}

// RequestRemove marca la entrada como pendiente de borrado (primera fase).
// La entrada sigue presente hasta ConfirmRemove.
func (s *Store) RequestRemove(index int) error {
	if index < 0 || index >= len(s.items) {
		return domain.ErrNotFound
	}
	s.pendingRemove = index
	return nil
}

// ConfirmRemove ejecuta el borrado pendiente (segunda fase).
func (s *Store) ConfirmRemove() error {
	if s.pendingRemove < 0 || s.pendingRemove >= len(s.items) {
		s.pendingRemove = -1
		return domain.ErrNoPendingOp
	}
	i := s.pendingRemove
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.pendingRemove = -1
	s.persist()
	return nil
}

// CancelRemove descarta la marca de borrado pendiente.
func (s *Store) CancelRemove() {
	s.pendingRemove = -1
}

// OrderedItem es una entrada junto con su índice real en el store, para que
// las acciones de fila de la vista referencien la entrada correcta aunque el
// orden visible no coincida con el de inserción.
type OrderedItem struct {
	Index int
	Item  entity.ShoppingItem
}

// DisplayOrder devuelve las entradas en el orden de presentación: primero las
// que faltan por coger (por nombre visible intercalado), después las que ya
// están en el carrito (por hora de entrada al carrito, ascendente). Orden
// estable: entradas iguales mantienen su orden relativo de inserción, así que
// el resultado es determinista para entradas iguales.
func (s *Store) DisplayOrder() []OrderedItem {
	out := make([]OrderedItem, len(s.items))
	for i, it := range s.items {
		out[i] = OrderedItem{Index: i, Item: it}
	}
	sort.SliceStable(out, func(a, b int) bool {
		ia, ib := out[a].Item, out[b].Item
		if ia.InCart != ib.InCart {
			return !ia.InCart
		}
		if ia.InCart {
			switch {
			case ia.CartTime == nil || ib.CartTime == nil:
				return false
			default:
				return ia.CartTime.Before(*ib.CartTime)
			}
		}
		return s.namer.Less(ia.Name, ib.Name)
	})
	return out
}

// persist guarda la lista completa; el fallo se reporta y no revierte nada.
func (s *Store) persist() {
	if err := s.persister.SaveList(s.Items()); err != nil && s.onPersistErr != nil {
		s.onPersistErr(err)
	}
}
