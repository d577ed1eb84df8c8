package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// ProductionEntryDTO fila de producción para los endpoints de inspección.
type ProductionEntryDTO struct {
	ID               string          `json:"id"`
	FoodID           string          `json:"food_id"`
	Date             string          `json:"date"`
	QuantityPrepared int             `json:"quantity_prepared"`
	ProductionCost   decimal.Decimal `json:"production_cost"`
	StaffID          string          `json:"staff_id,omitempty"`
	StartTime        string          `json:"start_time,omitempty"`
	EndTime          string          `json:"end_time,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// SalesEntryDTO fila de ventas para los endpoints de inspección.
type SalesEntryDTO struct {
	ID           string          `json:"id"`
	FoodID       string          `json:"food_id"`
	Date         string          `json:"date"`
	QuantitySold int             `json:"quantity_sold"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	StaffID      string          `json:"staff_id,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// WastageEntryDTO fila de merma para los endpoints de inspección.
type WastageEntryDTO struct {
	ID             string          `json:"id"`
	FoodID         string          `json:"food_id"`
	Date           string          `json:"date"`
	QuantityWasted int             `json:"quantity_wasted"`
	Reason         string          `json:"reason"`
	WasteValue     decimal.Decimal `json:"waste_value"`
	Explicit       bool            `json:"explicit"`
	StaffID        string          `json:"staff_id,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductionEntryFromEntity convierte la entidad de dominio a su DTO.
func ProductionEntryFromEntity(e *entity.ProductionEntry) *ProductionEntryDTO {
	return &ProductionEntryDTO{
		ID:               e.ID,
		FoodID:           e.FoodID,
		Date:             e.Date.Format("2006-01-02"),
		QuantityPrepared: e.QuantityPrepared,
		ProductionCost:   e.ProductionCost,
		StaffID:          e.StaffID,
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// SalesEntryFromEntity convierte la entidad de dominio a su DTO.
func SalesEntryFromEntity(e *entity.SalesEntry) *SalesEntryDTO {
	return &SalesEntryDTO{
		ID:           e.ID,
		FoodID:       e.FoodID,
		Date:         e.Date.Format("2006-01-02"),
		QuantitySold: e.QuantitySold,
		SalePrice:    e.SalePrice,
		StaffID:      e.StaffID,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// WastageEntryFromEntity convierte la entidad de dominio a su DTO.
func WastageEntryFromEntity(e *entity.WastageEntry) *WastageEntryDTO {
	return &WastageEntryDTO{
		ID:             e.ID,
		FoodID:         e.FoodID,
		Date:           e.Date.Format("2006-01-02"),
		QuantityWasted: e.QuantityWasted,
		Reason:         e.Reason,
		WasteValue:     e.WasteValue,
		Explicit:       e.Explicit,
		StaffID:        e.StaffID,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
