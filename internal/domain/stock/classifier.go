package stock

import (
	"strings"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// Level es el nivel de stock derivado de un producto (servicio de dominio).
type Level string

const (
	LevelNone Level = "none" // agotado
	LevelLow  Level = "low"  // por debajo del umbral
	LevelOK   Level = "ok"
)

// Classify deriva el nivel de stock de un producto. Es una función total:
// nunca lanza y ante campos desconocidos o ausentes responde LevelOK.
//
// Especias: manda el campo Level del producto, no la cantidad. Se aceptan
// tanto las formas canónicas ("none"/"low") como el par de sinónimos del
// idioma original de la app ("brak"/"mało", con la grafía ASCII "malo"
// porque el OCR de tickets pierde los diacríticos).
//
// Resto: cantidad 0 es agotado; cantidad <= umbral (si hay umbral) es bajo.
func Classify(p *entity.Product) Level {
	if p == nil {
		return LevelOK
	}
	if p.IsSpice {
		switch strings.ToLower(strings.TrimSpace(p.Level)) {
		case "brak", "none":
			return LevelNone
		case "malo", "mało", "low":
			return LevelLow
		default:
			return LevelOK
		}
	}
	if p.Quantity.Sign() <= 0 {
		return LevelNone
	}
	if p.Threshold != nil && p.Quantity.LessThanOrEqual(*p.Threshold) {
		return LevelLow
	}
	return LevelOK
}

// NeedsRestock indica si el nivel implica reposición (none o low).
func NeedsRestock(l Level) bool {
	return l == LevelNone || l == LevelLow
}
