package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level es la severidad de un toast.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Toast es un mensaje efímero para el usuario. RetryOp, si no está vacío,
// nombra la operación que el front-end puede reinvocar desde el propio toast
// (por ejemplo "reload-products" tras un fallo de red).
type Toast struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	RetryOp   string    `json:"retryOp,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Center acumula toasts pendientes de entregar al front-end. Los fallos de
// red y de almacenamiento acaban aquí en lugar de tumbar el pipeline de
// renderizado; la UI sigue operando con el último estado bueno conocido.
type Center struct {
	mu      sync.Mutex
	pending []Toast
}

// NewCenter construye el centro de notificaciones vacío.
func NewCenter() *Center {
	return &Center{}
}

// Info encola un toast informativo.
func (c *Center) Info(message string) {
	c.push(Toast{Level: LevelInfo, Message: message})
}

// Error encola un toast de error con una operación de reintento opcional.
func (c *Center) Error(message, retryOp string) {
	c.push(Toast{Level: LevelError, Message: message, RetryOp: retryOp})
}

func (c *Center) push(t Toast) {
	t.ID = uuid.New().String()
	t.CreatedAt = time.Now()
	c.mu.Lock()
	c.pending = append(c.pending, t)
	c.mu.Unlock()
}

// Drain devuelve los toasts pendientes y vacía la cola; cada toast se
// entrega una sola vez.
func (c *Center) Drain() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	if out == nil {
		out = []Toast{}
	}
	return out
}
