package suggestion

import "github.com/jhoicas/despensa-api/internal/domain/entity"

// BannerState es el estado del banner persistente de stock bajo.
type BannerState string

const (
	BannerHidden BannerState = "hidden"
	BannerShown  BannerState = "shown"
)

// Banner es la máquina de estados del aviso "tienes productos por reponer".
// Se re-evalúa cada vez que el inventario se recarga del backend, sobre el
// predicado crudo (ignora descartes: el aviso informa del estado real de la
// despensa, no de lo que el usuario ya contestó).
//
// Cerrarlo a mano lo silencia durante la racha baja en curso: mientras el
// predicado siga dando true el banner no se re-dispara. Solo cuando una
// re-evaluación da false se rearma, y la siguiente racha vuelve a mostrarse.
type Banner struct {
	state          BannerState
	closedInStreak bool
	lowCount       int
}

// NewBanner construye el banner oculto y armado.
func NewBanner() *Banner {
	return &Banner{state: BannerHidden}
}

// Recheck re-evalúa el predicado sobre el inventario actual y aplica las
// transiciones. Mientras está visible, las re-evaluaciones que siguen dando
// stock bajo solo refrescan el contador (idempotente).
func (b *Banner) Recheck(products []entity.Product) {
	n := countLowStock(products)
	b.lowCount = n
	if n == 0 {
		b.state = BannerHidden
		b.closedInStreak = false
		return
	}
	if b.state == BannerHidden && !b.closedInStreak {
		b.state = BannerShown
	}
}

// Close oculta el banner por acción explícita del usuario y lo deja
// silenciado hasta que termine la racha baja actual.
func (b *Banner) Close() {
	b.state = BannerHidden
	b.closedInStreak = true
}

// State devuelve el estado actual.
func (b *Banner) State() BannerState { return b.state }

// LowCount devuelve cuántos productos están en nivel de reposición según la
// última re-evaluación; alimenta el texto del banner.
func (b *Banner) LowCount() int { return b.lowCount }
