package ocrimport

import (
	"context"
	"strings"

	"github.com/jhoicas/despensa-api/internal/application/shopping"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// Matcher es el contrato de /api/ocr-match: líneas crudas de un ticket de
// compra a candidatos del dominio. El reconocimiento de texto en sí es del
// front-end; aquí solo llega el texto ya extraído.
type Matcher interface {
	MatchReceipt(ctx context.Context, items []string) ([]entity.ReceiptMatch, error)
}

// Selection es un candidato elegido por el usuario para importar.
type Selection struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// UseCase orquesta la importación de tickets: enviar las líneas al backend,
// presentar candidatos por línea y volcar la selección confirmada en la
// lista de la compra.
type UseCase struct {
	matcher Matcher
	store   *shopping.Store
}

// NewUseCase construye el caso de uso.
func NewUseCase(matcher Matcher, store *shopping.Store) *UseCase {
	return &UseCase{matcher: matcher, store: store}
}

// Submit envía las líneas no vacías del ticket y devuelve los candidatos.
func (uc *UseCase) Submit(ctx context.Context, lines []string) ([]entity.ReceiptMatch, error) {
	clean := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			clean = append(clean, l)
		}
	}
	if len(clean) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.matcher.MatchReceipt(ctx, clean)
}

// Confirm añade la selección a la lista de la compra. Nombres repetidos en la
// selección se funden en una sola entrada (el store suma cantidades).
// Devuelve cuántas selecciones se aplicaron.
func (uc *UseCase) Confirm(selections []Selection) (int, error) {
	if len(selections) == 0 {
		return 0, domain.ErrInvalidInput
	}
	added := 0
	for _, sel := range selections {
		if err := uc.store.Add(sel.Name, sel.Quantity); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
