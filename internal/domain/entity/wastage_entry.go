package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Razones de merma admitidas.
const (
	WastageReasonExpired        = "expired"
	WastageReasonOverproduction = "overproduction"
	WastageReasonQualityIssue   = "quality_issue"
	WastageReasonCustomerReturn = "customer_return"
	WastageReasonOther          = "other"
)

// ValidWastageReason indica si la razón pertenece al enum admitido.
func ValidWastageReason(reason string) bool {
	switch reason {
	case WastageReasonExpired, WastageReasonOverproduction,
		WastageReasonQualityIssue, WastageReasonCustomerReturn, WastageReasonOther:
		return true
	}
	return false
}

// WastageEntry registra la merma de un alimento en una fecha. Clave única (FoodID, Date).
// Explicit distingue una merma reportada por un operador de la derivada implícitamente
// (producido − vendido). Una merma explícita siempre prevalece: la derivación implícita
// nunca la sobreescribe.
type WastageEntry struct {
	ID             string
	FoodID         string
	Date           time.Time
	QuantityWasted int
	Reason         string
	WasteValue     decimal.Decimal // QuantityWasted × CostPerUnit (foto al commit)
	Explicit       bool
	StaffID        string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
