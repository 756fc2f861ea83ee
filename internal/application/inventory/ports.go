package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Clock fuente de la hora actual para los timestamps de proyectos, productos y movimientos.
type Clock interface {
	Now() time.Time
}

// IDGenerator genera identificadores únicos para las entidades nuevas.
type IDGenerator interface {
	NewID() string
}

// SystemClock implementa Clock con la hora del sistema.
type SystemClock struct{}

// Now devuelve time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator implementa IDGenerator con UUIDv4.
type UUIDGenerator struct{}

// NewID devuelve un UUIDv4 en texto.
func (UUIDGenerator) NewID() string { return uuid.New().String() }
