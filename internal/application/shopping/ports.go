package shopping

import "github.com/jhoicas/despensa-api/internal/domain/entity"

// Persister guarda y recupera la lista de la compra completa bajo una clave
// fija del almacén local. Es un puerto de efectos: la implementación real usa
// Badger y los tests una versión en memoria.
//
// Un error de SaveList nunca revierte la mutación en memoria; la lista en
// memoria es autoritativa durante la sesión (el guardado es caché best-effort).
type Persister interface {
	SaveList(items []entity.ShoppingItem) error
	LoadList() ([]entity.ShoppingItem, error)
}
