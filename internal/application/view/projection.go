package view

import (
	"sort"
	"strings"

	"github.com/jhoicas/despensa-api/internal/application/shopping"
	"github.com/jhoicas/despensa-api/internal/application/suggestion"
	"github.com/jhoicas/despensa-api/internal/domain/catalog"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/stock"
)

// Las proyecciones de este paquete son funciones puras estado -> filas de
// vista; no tocan red ni almacén. La capa fiber es un adaptador fino que las
// sirve como JSON y el front-end las pinta tal cual, sin diffing incremental:
// cada mutación reproyecta la región afectada completa.

// Filters es el estado de filtrado/orden de la tabla de productos.
type Filters struct {
	Category string `json:"category"`
	Storage  string `json:"storage"`
	Search   string `json:"search"`
	Sort     string `json:"sort"` // "name" (defecto) | "stock"
}

// ProductRow es una fila de la tabla de productos.
type ProductRow struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Quantity    string      `json:"quantity"`
	Unit        string      `json:"unit"`
	Category    string      `json:"category"`
	Storage     string      `json:"storage"`
	Stock       stock.Level `json:"stock"`
	Main        bool        `json:"main"`
	IsSpice     bool        `json:"isSpice"`
	Level       string      `json:"level,omitempty"`
}

// ProductTable proyecta el inventario con los filtros y el orden pedidos.
func ProductTable(products []entity.Product, f Filters, namer *catalog.Namer) []ProductRow {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	rows := []ProductRow{}
	for i := range products {
		p := products[i]
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Storage != "" && p.Storage != f.Storage {
			continue
		}
		display := namer.DisplayName(p.Name)
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(display), search) {
			continue
		}
		rows = append(rows, ProductRow{
			Name:        p.Name,
			DisplayName: display,
			Quantity:    p.Quantity.String(),
			Unit:        p.Unit,
			Category:    p.Category,
			Storage:     p.Storage,
			Stock:       stock.Classify(&p),
			Main:        p.Main,
			IsSpice:     p.IsSpice,
			Level:       p.Level,
		})
	}
	sortRows(rows, f.Sort, namer)
	return rows
}

// urgency ordena none < low < ok para el orden "stock".
func urgency(l stock.Level) int {
	switch l {
	case stock.LevelNone:
		return 0
	case stock.LevelLow:
		return 1
	default:
		return 2
	}
}

func sortRows(rows []ProductRow, by string, namer *catalog.Namer) {
	sort.SliceStable(rows, func(a, b int) bool {
		if by == "stock" && rows[a].Stock != rows[b].Stock {
			return urgency(rows[a].Stock) < urgency(rows[b].Stock)
		}
		return namer.Less(rows[a].Name, rows[b].Name)
	})
}

// ShoppingRow es una fila de la lista de la compra ya en orden de
// presentación. Index referencia la entrada real del store para las acciones
// de fila (+/-, carrito, borrar).
type ShoppingRow struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	DisplayName   string `json:"displayName"`
	Quantity      int    `json:"quantity"`
	InCart        bool   `json:"inCart"`
	PendingRemove bool   `json:"pendingRemove"`
}

// ShoppingRows proyecta la lista en orden de presentación, marcando la fila
// pendiente de confirmación de borrado para que la vista muestre el paso de
// confirmar en esa fila.
func ShoppingRows(ordered []shopping.OrderedItem, pendingRemove int, namer *catalog.Namer) []ShoppingRow {
	rows := make([]ShoppingRow, len(ordered))
	for i, o := range ordered {
		rows[i] = ShoppingRow{
			Index:         o.Index,
			Name:          o.Item.Name,
			DisplayName:   namer.DisplayName(o.Item.Name),
			Quantity:      o.Item.Quantity,
			InCart:        o.Item.InCart,
			PendingRemove: o.Index == pendingRemove,
		}
	}
	return rows
}

// SuggestionRow es una fila de la vista de sugerencias.
type SuggestionRow struct {
	Name         string      `json:"name"`
	DisplayName  string      `json:"displayName"`
	SuggestedQty int         `json:"suggestedQty"`
	Stock        stock.Level `json:"stock"`
	Unit         string      `json:"unit,omitempty"`
}

// SuggestionRows proyecta las sugerencias (ya filtradas y ordenadas por el
// motor) a filas de vista.
func SuggestionRows(sugs []suggestion.Suggestion, namer *catalog.Namer) []SuggestionRow {
	rows := make([]SuggestionRow, len(sugs))
	for i, s := range sugs {
		rows[i] = SuggestionRow{
			Name:         s.Product.Name,
			DisplayName:  namer.DisplayName(s.Product.Name),
			SuggestedQty: s.SuggestedQty,
			Stock:        stock.Classify(&s.Product),
			Unit:         s.Product.Unit,
		}
	}
	return rows
}
