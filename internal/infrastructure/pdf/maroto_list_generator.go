// Package pdf genera la versión imprimible de la lista de la compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  TÍTULO + fecha de generación               │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: ☐ | Producto | Cantidad             │
//	│         (lo ya cogido, al final y en gris)  │
//	│  ─────────────────────────────────────────  │
//	│  PIE: total de artículos pendientes         │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/despensa-api/internal/application/session"
	"github.com/jhoicas/despensa-api/internal/application/view"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ session.PDFRenderer = (*MarotoListGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 68}
	colorGray    = &props.Color{Red: 120, Green: 120, Blue: 120}
)

// MarotoListGenerator implementa session.PDFRenderer usando Maroto v2.
type MarotoListGenerator struct{}

// NewMarotoListGenerator construye el generador.
func NewMarotoListGenerator() *MarotoListGenerator { return &MarotoListGenerator{} }

// RenderShoppingList genera el PDF y devuelve sus bytes. rows llega ya en
// orden de presentación (pendientes primero, carrito al final).
func (g *MarotoListGenerator) RenderShoppingList(title string, rows []view.ShoppingRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(itemRow(r))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generando PDF de la lista: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size:  10,
				Align: align.Right,
				Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Size: 10, Style: fontstyle.Bold}
	return row.New(8).Add(
		col.New(1).Add(text.New("", bold)),
		col.New(8).Add(text.New("Producto", bold)),
		col.New(3).Add(text.New("Cantidad", mergeAlign(bold, align.Right))),
	)
}

func itemRow(r view.ShoppingRow) core.Row {
	style := props.Text{Size: 10}
	mark := "☐"
	if r.InCart {
		mark = "☑"
		style.Color = colorGray
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(mark, style)),
		col.New(8).Add(text.New(r.DisplayName, style)),
		col.New(3).Add(text.New(fmt.Sprintf("%d", r.Quantity), mergeAlign(style, align.Right))),
	)
}

func footerRow(rows []view.ShoppingRow) core.Row {
	pending := 0
	for _, r := range rows {
		if !r.InCart {
			pending++
		}
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d artículos pendientes de %d", pending, len(rows)), props.Text{
				Size:  9,
				Align: align.Right,
				Color: colorGray,
			}),
		),
	)
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
