package entity

import "github.com/shopspring/decimal"

// Product representa un producto de la despensa tal como lo expone el backend.
// Quantity y Threshold son numéricos (decimal) porque el backend admite
// fracciones de paquete; para especias (IsSpice) la cantidad no aplica y el
// nivel cualitativo Level es la fuente de verdad.
type Product struct {
	Name        string           `json:"name"`
	Unit        string           `json:"unit"`
	Quantity    decimal.Decimal  `json:"quantity"`
	PackageSize decimal.Decimal  `json:"package_size"`
	PackSize    *decimal.Decimal `json:"pack_size"`
	Threshold   *decimal.Decimal `json:"threshold"`
	Main        bool             `json:"main"`
	Category    string           `json:"category"`
	Storage     string           `json:"storage"`
	IsSpice     bool             `json:"is_spice"`
	Level       string           `json:"level"` // "none" | "low" | "medium" | "" (no especia)
}

// Normalize aplica los valores por defecto y la regla de especias sobre un
// registro crudo del backend. Para especias la cantidad se fuerza a 0: el
// nivel cualitativo manda y una cantidad residual no debe influir en nada.
func (p *Product) Normalize() {
	if p.IsSpice {
		p.Quantity = decimal.Zero
	}
	if p.PackageSize.IsZero() {
		p.PackageSize = decimal.NewFromInt(1)
	}
	if p.Category == "" {
		p.Category = "otros"
	}
	if p.Storage == "" {
		p.Storage = "despensa"
	}
}

// NormalizeAll normaliza una secuencia completa (respuesta de /api/products).
func NormalizeAll(products []Product) []Product {
	for i := range products {
		products[i].Normalize()
	}
	return products
}
