package entity

import "time"

// ShoppingItem es una entrada de la lista de la compra. Hay a lo sumo una
// entrada por nombre de producto; añadir de nuevo el mismo nombre suma
// cantidades en lugar de duplicar la fila.
//
// Invariantes:
//   - Quantity es siempre un entero >= 1 tras cualquier mutación.
//   - CartTime está presente si y solo si InCart es true.
type ShoppingItem struct {
	Name     string     `json:"name"`
	Quantity int        `json:"quantity"`
	InCart   bool       `json:"inCart"`
	CartTime *time.Time `json:"cartTime,omitempty"`
}
