package entity

import "time"

// Customer representa un cliente.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
