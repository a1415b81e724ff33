package suggestion

import (
	"sort"
	"strings"

	"github.com/jhoicas/despensa-api/internal/application/shopping"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/catalog"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/stock"
)

// Suggestion es un producto candidato a reponer junto con la cantidad
// sugerida de compra (el umbral redondeado hacia arriba, mínimo 1).
type Suggestion struct {
	Product      entity.Product
	SuggestedQty int
}

// Engine deriva las sugerencias de reposición del inventario actual y lleva
// el conjunto de descartes de la sesión: los productos que el usuario ya
// aceptó o rechazó no vuelven a sugerirse hasta el próximo arranque. El
// descarte no se persiste a propósito: en una sesión nueva un producto que
// sigue bajo de stock debe reaparecer.
type Engine struct {
	dismissed map[string]bool
	store     *shopping.Store
	namer     *catalog.Namer
}

// NewEngine construye el motor con el conjunto de descartes vacío.
func NewEngine(store *shopping.Store, namer *catalog.Namer) *Engine {
	return &Engine{
		dismissed: map[string]bool{},
		store:     store,
		namer:     namer,
	}
}

// eligible decide si el producto amerita sugerencia, sin mirar descartes:
// especias con nivel none/low, o productos básicos (Main) agotados o en el
// umbral o por debajo.
func eligible(p *entity.Product) bool {
	if p.IsSpice {
		return stock.NeedsRestock(stock.Classify(p))
	}
	if !p.Main {
		return false
	}
	if p.Quantity.Sign() <= 0 {
		return true
	}
	return p.Threshold != nil && p.Quantity.LessThanOrEqual(*p.Threshold)
}

// AnyLowStock es el predicado crudo del banner: ¿hay algo que reponer en el
// inventario actual? Ignora el conjunto de descartes.
func AnyLowStock(products []entity.Product) bool {
	return countLowStock(products) > 0
}

func countLowStock(products []entity.Product) int {
	n := 0
	for i := range products {
		if eligible(&products[i]) {
			n++
		}
	}
	return n
}

// Suggestions devuelve los candidatos no descartados, ordenados por nombre
// visible intercalado.
func (e *Engine) Suggestions(products []entity.Product) []Suggestion {
	out := []Suggestion{}
	for i := range products {
		p := products[i]
		if e.dismissed[p.Name] || !eligible(&p) {
			continue
		}
		out = append(out, Suggestion{Product: p, SuggestedQty: suggestedQty(&p)})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return e.namer.Less(out[a].Product.Name, out[b].Product.Name)
	})
	return out
}

// suggestedQty propone el umbral como cantidad de compra; sin umbral, 1.
func suggestedQty(p *entity.Product) int {
	if p.Threshold == nil {
		return 1
	}
	q := int(p.Threshold.Ceil().IntPart())
	if q < 1 {
		q = 1
	}
	return q
}

// Accept añade el producto a la lista de la compra con la cantidad ajustada
// por el usuario (suelo 1, sin techo) y lo descarta para el resto de la
// sesión, aunque su nivel de stock no cambie.
func (e *Engine) Accept(name string, qty int) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidInput
	}
	if err := e.store.Add(name, qty); err != nil {
		return err
	}
	e.dismissed[name] = true
	return nil
}

// Reject descarta el producto para la sesión sin tocar la lista.
func (e *Engine) Reject(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidInput
	}
	e.dismissed[name] = true
	return nil
}

// Dismissed indica si el producto ya fue aceptado o rechazado esta sesión.
func (e *Engine) Dismissed(name string) bool {
	return e.dismissed[name]
}
