// Package reports contiene los casos de uso analíticos: sugerencia de producción,
// resumen semanal, libro diario y el panel del día. Todos son de solo lectura y
// corren fuera de la unidad atómica de escritura.
package reports

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// SuggestionConfig parametriza la ventana y los márgenes de la sugerencia.
type SuggestionConfig struct {
	WindowDays int     // días de historia consultados
	MinSamples int     // mínimo de días con venta para sugerir
	MaxMargin  float64 // tope del margen por variabilidad (coeficiente de variación acotado)
}

// SuggestionUseCase calcula la cantidad de producción sugerida para un alimento
// a partir de su ventana reciente de ventas y mermas:
//
//	sugerido = redondear(ventaMedia × (1 + min(cv, MaxMargin)) × (1 − fracciónMerma))
//
// La matemática corre en float64 (desviación estándar); los resultados
// monetarios no participan, solo cantidades.
type SuggestionUseCase struct {
	foodRepo   repository.FoodItemRepository
	reportRepo repository.ReportRepository
	cfg        SuggestionConfig
}

// NewSuggestionUseCase construye el caso de uso.
func NewSuggestionUseCase(
	foodRepo repository.FoodItemRepository,
	reportRepo repository.ReportRepository,
	cfg SuggestionConfig,
) *SuggestionUseCase {
	return &SuggestionUseCase{foodRepo: foodRepo, reportRepo: reportRepo, cfg: cfg}
}

// Suggest calcula la sugerencia para foodID. Con menos de MinSamples días de
// venta en la ventana devuelve el marcador de datos insuficientes, nunca un cero
// que parezca una recomendación.
func (uc *SuggestionUseCase) Suggest(ctx context.Context, foodID string) (*dto.SuggestionResponse, error) {
	if foodID == "" {
		return nil, fmt.Errorf("food_id requerido: %w", domain.ErrValidation)
	}
	food, err := uc.foodRepo.GetByID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	// Ventana: los WindowDays días anteriores a hoy; el día en curso está incompleto
	today := midnightUTC(time.Now())
	from := today.AddDate(0, 0, -uc.cfg.WindowDays)
	to := today.AddDate(0, 0, -1)

	samples, err := uc.reportRepo.GetWindowSamples(ctx, foodID, from, to)
	if err != nil {
		return nil, err
	}
	if len(samples) < uc.cfg.MinSamples {
		return &dto.SuggestionResponse{
			FoodID:            food.ID,
			FoodName:          food.Name,
			SufficientData:    false,
			SampleDays:        len(samples),
			AvgDailySales:     decimal.Zero,
			SalesVariability:  decimal.Zero,
			WasteFraction:     decimal.Zero,
			SuggestedQuantity: 0,
			Message:           fmt.Sprintf("se requieren al menos %d días con ventas; hay %d", uc.cfg.MinSamples, len(samples)),
		}, nil
	}

	var soldSum float64
	for _, s := range samples {
		soldSum += float64(s.QuantitySold)
	}
	n := float64(len(samples))
	mean := soldSum / n

	var variance float64
	for _, s := range samples {
		d := float64(s.QuantitySold) - mean
		variance += d * d
	}
	variance /= n

	cv := 0.0
	if mean > 0 {
		cv = math.Sqrt(variance) / mean
	}
	margin := math.Min(cv, uc.cfg.MaxMargin)

	// Fracción de merma: promedio de los ratios diarios merma/producción,
	// ignorando días sin producción. Un promedio de ratios pesa cada día por
	// igual; el ratio de las sumas dejaría que un día grande domine.
	var ratioSum float64
	ratioDays := 0
	for _, s := range samples {
		if s.QuantityPrepared <= 0 {
			continue
		}
		ratio := float64(s.QuantityWasted) / float64(s.QuantityPrepared)
		if ratio > 1 {
			ratio = 1
		}
		ratioSum += ratio
		ratioDays++
	}
	wasteFraction := 0.0
	if ratioDays > 0 {
		wasteFraction = ratioSum / float64(ratioDays)
	}

	suggested := int(math.Round(mean * (1 + margin) * (1 - wasteFraction)))
	if suggested < 0 {
		suggested = 0
	}

	return &dto.SuggestionResponse{
		FoodID:            food.ID,
		FoodName:          food.Name,
		SufficientData:    true,
		SampleDays:        len(samples),
		AvgDailySales:     decimal.NewFromFloat(mean).Round(2),
		SalesVariability:  decimal.NewFromFloat(margin).Round(4),
		WasteFraction:     decimal.NewFromFloat(wasteFraction).Round(4),
		SuggestedQuantity: suggested,
	}, nil
}

// midnightUTC trunca un instante a su fecha calendario UTC.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
