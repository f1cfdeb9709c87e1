package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement es un hecho inmutable del libro de inventario: una entrada o salida
// de stock para un producto. Nunca se actualiza ni se borra; las reversas se
// modelan como movimientos compensatorios.
type Movement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT
	Quantity  int64  // siempre positivo; el signo lo da Type
	CreatedAt time.Time
	CreatedBy string // UserID
}
