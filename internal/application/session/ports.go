package session

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/application/view"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// Backend es el contrato completo del backend de inventario que esta
// aplicación consume. Solo lectura salvo el reemplazo de favoritos; la fuente
// de verdad de productos y recetas vive al otro lado.
type Backend interface {
	FetchProducts(ctx context.Context) ([]entity.Product, error)
	FetchRecipes(ctx context.Context) ([]entity.Recipe, error)
	FetchDomain(ctx context.Context) (*entity.DomainData, error)
	MatchReceipt(ctx context.Context, items []string) ([]entity.ReceiptMatch, error)
	ReplaceFavorites(ctx context.Context, names []string) error
}

// PDFRenderer genera la versión imprimible de la lista de la compra.
type PDFRenderer interface {
	RenderShoppingList(title string, rows []view.ShoppingRow) ([]byte, error)
}
