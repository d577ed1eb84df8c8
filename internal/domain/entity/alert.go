package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de alerta.
const (
	AlertTypeHighWastage = "high_wastage"
	AlertTypeLowStock    = "low_stock"
)

// Severidades de alerta, de menor a mayor urgencia.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert es una condición anómala detectada al comprometer una entrada del libro diario.
// Invariante: a lo sumo una alerta NO resuelta por (FoodID, AlertDate, Type); el motor
// actualiza esa fila en vez de duplicarla. IsResolved es una transición de un solo
// sentido (false → true) mediante acción explícita de un operador.
type Alert struct {
	ID                string
	FoodID            string
	FoodName          string // denormalizado en lecturas
	AlertDate         time.Time
	Type              string
	Message           string
	WastagePercentage decimal.Decimal
	Severity          string
	IsResolved        bool
	ResolvedBy        *string
	ResolvedAt        *time.Time
	ResolutionNotes   string
	CreatedAt         time.Time
}
