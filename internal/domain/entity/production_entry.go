package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionEntry registra la producción de un alimento en una fecha.
// Clave única (FoodID, Date): una segunda entrega para la misma clave
// actualiza la fila existente (last-write-wins).
// ProductionCost es derivado: QuantityPrepared × CostPerUnit (foto al commit).
type ProductionEntry struct {
	ID               string
	FoodID           string
	Date             time.Time // fecha calendario, sin componente horario
	QuantityPrepared int
	ProductionCost   decimal.Decimal
	StaffID          string
	StartTime        string // opcional, "HH:MM"
	EndTime          string // opcional, "HH:MM"
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
