package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// AlertDTO representación HTTP de una alerta.
type AlertDTO struct {
	ID                string          `json:"id"`
	FoodID            string          `json:"food_id"`
	FoodName          string          `json:"food_name,omitempty"`
	AlertDate         string          `json:"alert_date"`
	Type              string          `json:"alert_type"`
	Message           string          `json:"message"`
	WastagePercentage decimal.Decimal `json:"wastage_percentage"`
	Severity          string          `json:"severity"`
	IsResolved        bool            `json:"is_resolved"`
	ResolvedBy        *string         `json:"resolved_by,omitempty"`
	ResolvedAt        *time.Time      `json:"resolved_at,omitempty"`
	ResolutionNotes   string          `json:"resolution_notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ResolveAlertRequest body para POST /api/alerts/:id/resolve.
type ResolveAlertRequest struct {
	ResolvedBy      string `json:"resolved_by"`
	ResolutionNotes string `json:"resolution_notes,omitempty"`
}

// AlertFromEntity convierte la entidad de dominio a su DTO.
func AlertFromEntity(a *entity.Alert) *AlertDTO {
	if a == nil {
		return nil
	}
	return &AlertDTO{
		ID:                a.ID,
		FoodID:            a.FoodID,
		FoodName:          a.FoodName,
		AlertDate:         a.AlertDate.Format("2006-01-02"),
		Type:              a.Type,
		Message:           a.Message,
		WastagePercentage: a.WastagePercentage,
		Severity:          a.Severity,
		IsResolved:        a.IsResolved,
		ResolvedBy:        a.ResolvedBy,
		ResolvedAt:        a.ResolvedAt,
		ResolutionNotes:   a.ResolutionNotes,
		CreatedAt:         a.CreatedAt,
	}
}
