// Package localstore persiste el estado local de la aplicación (lista de la
// compra y favoritos) en un almacén clave-valor embebido (Badger), el
// equivalente del localStorage del front-end original: una caché best-effort
// bajo claves fijas, no una base de datos de verdad.
package localstore

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/jhoicas/despensa-api/internal/application/favorites"
	"github.com/jhoicas/despensa-api/internal/application/shopping"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// Claves fijas, mismas que usaba el front-end en localStorage.
var (
	keyShoppingList = []byte("shoppingList")
	keyFavorites    = []byte("favoriteRecipes")
)

// Verificar en tiempo de compilación que BadgerStore implementa ambos puertos.
var (
	_ shopping.Persister = (*BadgerStore)(nil)
	_ favorites.Cache    = (*BadgerStore)(nil)
)

// BadgerStore implementa la persistencia local sobre Badger.
type BadgerStore struct {
	db *badger.DB
}

// Open abre (o crea) el almacén en dir. Con dir vacío usa el modo en memoria
// de Badger, útil en tests y para ejecutar sin estado.
func Open(dir string) (*BadgerStore, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// Close cierra el almacén.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// SaveList serializa y guarda la lista completa bajo su clave fija.
func (s *BadgerStore) SaveList(items []entity.ShoppingItem) error {
	return s.setJSON(keyShoppingList, items)
}

// LoadList recupera la lista; una clave ausente es una lista vacía.
func (s *BadgerStore) LoadList() ([]entity.ShoppingItem, error) {
	var items []entity.ShoppingItem
	if err := s.getJSON(keyShoppingList, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveFavorites guarda los nombres de recetas favoritas bajo su clave fija.
func (s *BadgerStore) SaveFavorites(names []string) error {
	return s.setJSON(keyFavorites, names)
}

// LoadFavorites recupera los favoritos; una clave ausente es lista vacía.
func (s *BadgerStore) LoadFavorites() ([]string, error) {
	var names []string
	if err := s.getJSON(keyFavorites, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *BadgerStore) setJSON(key []byte, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, raw)
	})
}

func (s *BadgerStore) getJSON(key []byte, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}
