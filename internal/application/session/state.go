package session

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/favorites"
	"github.com/jhoicas/despensa-api/internal/application/notification"
	"github.com/jhoicas/despensa-api/internal/application/ocrimport"
	"github.com/jhoicas/despensa-api/internal/application/shopping"
	"github.com/jhoicas/despensa-api/internal/application/suggestion"
	"github.com/jhoicas/despensa-api/internal/application/view"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/catalog"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/pkg/logger"
)

// Nombres de operación reintentables que viajan en los toasts de error; el
// front-end los reinvoca tal cual contra esta API.
const (
	opReloadProducts = "reload-products"
	opReloadRecipes  = "reload-recipes"
	opReloadDomain   = "reload-domain"
	opSaveList       = "save-shopping-list"
)

// State es el estado de sesión de la aplicación: inventario, lista de la
// compra, descartes de sugerencias, filtros de la tabla y banner. Es el único
// dueño de todo el estado mutable; los handlers HTTP no guardan nada.
//
// El mutex reproduce el modelo monohilo de la UI original: cada mutación se
// aplica y persiste por completo antes de que cualquier proyección vuelva a
// leer el estado. No hay suspensión entre mutación y persistencia.
type State struct {
	mu sync.Mutex

	products []entity.Product
	recipes  []entity.Recipe
	filters  view.Filters

	store     *shopping.Store
	engine    *suggestion.Engine
	banner    *suggestion.Banner
	favorites *favorites.UseCase
	importer  *ocrimport.UseCase
	namer     *catalog.Namer

	backend  Backend
	pdf      PDFRenderer
	notifier *notification.Center
	log      *logger.Logger
}

// Deps agrupa las dependencias inyectadas para construir el estado.
type Deps struct {
	Backend   Backend
	Persister shopping.Persister
	FavCache  favorites.Cache
	PDF       PDFRenderer
	Namer     *catalog.Namer
	Notifier  *notification.Center
	Log       *logger.Logger
	Clock     func() time.Time
}

// New construye el estado de sesión hidratando las cachés locales. Los fallos
// de hidratación no son fatales: se registran y se arranca vacío.
func New(d Deps) *State {
	if d.Clock == nil {
		d.Clock = time.Now
	}

	store, err := shopping.NewStore(d.Persister, d.Namer, d.Clock)
	if err != nil {
		d.Log.Warn().Err(err).Msg("hidratando la lista de la compra; se arranca vacía")
	}

	favs, err := favorites.NewUseCase(d.Backend, d.FavCache)
	if err != nil {
		d.Log.Warn().Err(err).Msg("hidratando favoritos; se arranca sin marcar")
	}

	s := &State{
		store:     store,
		engine:    suggestion.NewEngine(store, d.Namer),
		banner:    suggestion.NewBanner(),
		favorites: favs,
		importer:  ocrimport.NewUseCase(d.Backend, store),
		namer:     d.Namer,
		backend:   d.Backend,
		pdf:       d.PDF,
		notifier:  d.Notifier,
		log:       d.Log,
	}
	store.OnPersistError(func(err error) {
		s.log.Error().Err(err).Msg("guardando la lista de la compra")
		s.notifier.Error("No se pudo guardar la lista; los cambios siguen en memoria", opSaveList)
	})
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Recargas desde el backend
// ──────────────────────────────────────────────────────────────────────────────

// ReloadProducts recarga el inventario y re-evalúa el banner de stock bajo.
// Ante fallo se conserva el último inventario bueno conocido y se encola un
// toast con reintento.
func (s *State) ReloadProducts(ctx context.Context) error {
	products, err := s.backend.FetchProducts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("recargando productos")
		s.notifier.Error("No se pudo cargar el inventario", opReloadProducts)
		return err
	}
	products = entity.NormalizeAll(products)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.banner.Recheck(products)
	return nil
}

// ReloadRecipes recarga las recetas del backend.
func (s *State) ReloadRecipes(ctx context.Context) error {
	recipes, err := s.backend.FetchRecipes(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("recargando recetas")
		s.notifier.Error("No se pudieron cargar las recetas", opReloadRecipes)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = recipes
	return nil
}

// ReloadDomain recarga los datos de referencia (alias de productos).
func (s *State) ReloadDomain(ctx context.Context) error {
	d, err := s.backend.FetchDomain(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("recargando datos de dominio")
		s.notifier.Error("No se pudieron cargar los datos de referencia", opReloadDomain)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.namer.SetDomain(d)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyecciones
// ──────────────────────────────────────────────────────────────────────────────

// SetFilters actualiza el estado de filtros de la tabla de productos.
func (s *State) SetFilters(f view.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// ProductTable proyecta el inventario con los filtros de la sesión.
func (s *State) ProductTable() []view.ProductRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.ProductTable(s.products, s.filters, s.namer)
}

// ShoppingList proyecta la lista de la compra en orden de presentación.
func (s *State) ShoppingList() []view.ShoppingRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shoppingRowsLocked()
}

func (s *State) shoppingRowsLocked() []view.ShoppingRow {
	return view.ShoppingRows(s.store.DisplayOrder(), s.store.PendingRemove(), s.namer)
}

// Suggestions proyecta las sugerencias de reposición vigentes.
func (s *State) Suggestions() []view.SuggestionRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.SuggestionRows(s.engine.Suggestions(s.products), s.namer)
}

// BannerView es el estado proyectado del banner.
type BannerView struct {
	Visible  bool `json:"visible"`
	LowCount int  `json:"lowCount"`
}

// Banner proyecta el banner de stock bajo.
func (s *State) Banner() BannerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BannerView{
		Visible:  s.banner.State() == suggestion.BannerShown,
		LowCount: s.banner.LowCount(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones de la lista de la compra
// ──────────────────────────────────────────────────────────────────────────────

// AddItem añade un producto a la lista (fusiona por nombre).
func (s *State) AddItem(name string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Add(name, qty)
}

// SetInCart marca o desmarca una entrada como cogida.
func (s *State) SetInCart(index int, inCart bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SetInCart(index, inCart)
}

// SetQuantity fija la cantidad de una entrada (suelo 1).
func (s *State) SetQuantity(index, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SetQuantity(index, qty)
}

// RequestRemove marca una entrada para borrar (primera fase).
func (s *State) RequestRemove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RequestRemove(index)
}

// ConfirmRemove confirma el borrado pendiente.
func (s *State) ConfirmRemove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ConfirmRemove()
}

// CancelRemove descarta el borrado pendiente.
func (s *State) CancelRemove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.CancelRemove()
}

// ──────────────────────────────────────────────────────────────────────────────
// Sugerencias y banner
// ──────────────────────────────────────────────────────────────────────────────

// AcceptSuggestion acepta la sugerencia con la cantidad ajustada.
func (s *State) AcceptSuggestion(name string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Accept(name, qty)
}

// RejectSuggestion rechaza la sugerencia para el resto de la sesión.
func (s *State) RejectSuggestion(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Reject(name)
}

// CloseBanner cierra el banner por acción explícita del usuario.
func (s *State) CloseBanner() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banner.Close()
}

// ShoppingScreen es la respuesta del CTA del banner: ambas vistas de la
// pantalla de compra reproyectadas. Navegar no oculta el banner; solo el
// cierre explícito o una re-evaluación sin stock bajo lo hacen.
type ShoppingScreen struct {
	Suggestions []view.SuggestionRow `json:"suggestions"`
	List        []view.ShoppingRow   `json:"list"`
}

// GoShopping materializa la navegación del CTA del banner.
func (s *State) GoShopping() ShoppingScreen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ShoppingScreen{
		Suggestions: view.SuggestionRows(s.engine.Suggestions(s.products), s.namer),
		List:        s.shoppingRowsLocked(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Recetas y favoritos
// ──────────────────────────────────────────────────────────────────────────────

// Recipes proyecta las recetas con su marca de favorito.
func (s *State) Recipes() []view.RecipeRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.RecipeRows(s.recipes, s.favorites.IsFavorite, s.namer)
}

// ToggleFavorite alterna un favorito con confirmación remota y rollback.
func (s *State) ToggleFavorite(ctx context.Context, name string) (favorites.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.favorites.Toggle(ctx, name)
	if err != nil && res.Status == favorites.StatusRolledBack {
		s.log.Error().Err(err).Str("receta", name).Msg("confirmando favorito")
		s.notifier.Error("No se pudo guardar el favorito; cambio revertido", "")
	}
	return res, err
}

// AddRecipeToList vuelca los ingredientes de la receta en la lista de la
// compra, fusionando con las entradas existentes.
func (s *State) AddRecipeToList(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recipes {
		if r.Name != name {
			continue
		}
		added := 0
		for _, ing := range r.Ingredients {
			if err := s.store.Add(ing.Name, ing.Quantity); err != nil {
				return added, err
			}
			added++
		}
		return added, nil
	}
	return 0, domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación de tickets y PDF
// ──────────────────────────────────────────────────────────────────────────────

// SubmitReceipt envía las líneas del ticket al backend y devuelve candidatos.
func (s *State) SubmitReceipt(ctx context.Context, lines []string) ([]entity.ReceiptMatch, error) {
	matches, err := s.importer.Submit(ctx, lines)
	if err != nil && err != domain.ErrInvalidInput {
		s.log.Error().Err(err).Msg("casando líneas del ticket")
		s.notifier.Error("No se pudo procesar el ticket", "")
	}
	return matches, err
}

// ConfirmImport vuelca la selección confirmada en la lista.
func (s *State) ConfirmImport(selections []ocrimport.Selection) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.importer.Confirm(selections)
}

// ExportPDF genera la lista imprimible con el orden de presentación actual.
func (s *State) ExportPDF() ([]byte, error) {
	s.mu.Lock()
	rows := s.shoppingRowsLocked()
	s.mu.Unlock()
	return s.pdf.RenderShoppingList("Lista de la compra", rows)
}

// Toasts entrega y vacía las notificaciones pendientes.
func (s *State) Toasts() []notification.Toast {
	return s.notifier.Drain()
}
