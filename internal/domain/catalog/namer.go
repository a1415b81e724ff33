package catalog

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

// Namer resuelve el nombre visible de un producto (alias del dominio) y
// compara nombres con la intercalación del idioma configurado, para que
// "ajo" < "árbol" < "banana" ordene como espera el usuario y no por bytes.
//
// No es seguro para uso concurrente (collate.Collator no lo es); el estado
// de sesión lo usa siempre bajo su mutex.
type Namer struct {
	coll   *collate.Collator
	labels map[string]string // nombre canónico -> alias visible
}

// NewNamer construye un Namer para la etiqueta BCP 47 indicada.
// Una etiqueta inválida cae en la intercalación neutra (und).
func NewNamer(locale string) *Namer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Namer{
		coll:   collate.New(tag, collate.IgnoreCase),
		labels: map[string]string{},
	}
}

// SetDomain carga los alias de /api/domain. El primer alias de cada producto
// es su etiqueta visible; sin alias se muestra el nombre canónico.
func (n *Namer) SetDomain(d *entity.DomainData) {
	labels := map[string]string{}
	if d != nil {
		for _, p := range d.Products {
			if len(p.Aliases) > 0 && p.Aliases[0] != "" {
				labels[p.Name] = p.Aliases[0]
			}
		}
	}
	n.labels = labels
}

// DisplayName devuelve la etiqueta visible para un nombre canónico.
func (n *Namer) DisplayName(name string) string {
	if label, ok := n.labels[name]; ok {
		return label
	}
	return name
}

// Less compara dos nombres canónicos por su etiqueta visible intercalada.
func (n *Namer) Less(a, b string) bool {
	return n.coll.CompareString(n.DisplayName(a), n.DisplayName(b)) < 0
}
